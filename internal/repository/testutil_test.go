package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"playtube-go/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// newTestDB 打开独立的内存 sqlite 并迁移全部表，
// 唯一索引等约束在测试中真实生效
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.WatchHistory{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Tweet{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()

	user := &model.User{
		UserName: name,
		Email:    name + "@example.com",
		FullName: name,
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedVideo(t *testing.T, db *gorm.DB, ownerID int64, title string, published bool) *model.Video {
	t.Helper()

	video := &model.Video{
		OwnerID:     ownerID,
		Title:       title,
		Description: "description of " + title,
		VideoURL:    "http://media.local/" + title + ".mp4",
		IsPublished: published,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}
