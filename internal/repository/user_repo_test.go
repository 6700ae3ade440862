package repository

import (
	"testing"

	"playtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserCreateDuplicateTranslated(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "alice")

	// 用户名或邮箱撞唯一索引时错误被翻译为 gorm.ErrDuplicatedKey
	err := repo.Create(&model.User{
		UserName: "alice",
		Email:    "other@example.com",
		FullName: "alice",
		Password: "hashed",
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = repo.Create(&model.User{
		UserName: "other",
		Email:    "alice@example.com",
		FullName: "other",
		Password: "hashed",
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserGetByIdentifier(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "alice")

	byName, err := repo.GetByIdentifier("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", byName.UserName)

	byEmail, err := repo.GetByIdentifier("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)
}

func TestUserSetRefreshToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	alice := seedUser(t, db, "alice")

	token := "refresh-token-value"
	require.NoError(t, repo.SetRefreshToken(alice.ID, &token))

	got, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RefreshToken)
	assert.Equal(t, token, *got.RefreshToken)

	// nil 表示撤销
	require.NoError(t, repo.SetRefreshToken(alice.ID, nil))

	got, err = repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RefreshToken)
}

func TestWatchHistorySetSemantics(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	alice := seedUser(t, db, "alice")
	video := seedVideo(t, db, alice.ID, "first", true)

	require.NoError(t, repo.AddWatchHistory(alice.ID, video.ID))
	// 重复观看不产生新记录，也不重排
	require.NoError(t, repo.AddWatchHistory(alice.ID, video.ID))

	entries, total, err := repo.ListWatchHistory(alice.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, video.ID, entries[0].Video.ID)
	assert.Equal(t, "alice", entries[0].Video.Owner.UserName)
}
