package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoListPublishedOnlyAndSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)
	alice := seedUser(t, db, "alice")

	seedVideo(t, db, alice.ID, "Learning Go", true)
	seedVideo(t, db, alice.ID, "Cooking pasta", true)
	seedVideo(t, db, alice.ID, "GO advanced draft", false)

	search := "go"
	videos, total, err := repo.List(VideoListParams{
		Skip:          0,
		Limit:         10,
		Search:        &search,
		PublishedOnly: true,
		WithOwner:     true,
	})
	require.NoError(t, err)

	// 大小写不敏感匹配，未发布的不返回
	assert.Equal(t, int64(1), total)
	require.Len(t, videos, 1)
	assert.Equal(t, "Learning Go", videos[0].Title)
	assert.Equal(t, "alice", videos[0].Owner.UserName)
}

func TestVideoListPaginationStableOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)
	alice := seedUser(t, db, "alice")

	first := seedVideo(t, db, alice.ID, "first", true)
	second := seedVideo(t, db, alice.ID, "second", true)
	third := seedVideo(t, db, alice.ID, "third", true)

	// 默认按创建时间倒序，同刻以 ID 倒序决出稳定顺序
	params := VideoListParams{Limit: 1, PublishedOnly: true}

	page1, total, err := repo.List(params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 1)
	assert.Equal(t, third.ID, page1[0].ID)

	params.Skip = 1
	page2, _, err := repo.List(params)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, second.ID, page2[0].ID)

	params.Skip = 2
	page3, _, err := repo.List(params)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, first.ID, page3[0].ID)

	// 越界页返回空集而非错误
	params.Skip = 3
	page4, _, err := repo.List(params)
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestVideoTogglePublished(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)
	alice := seedUser(t, db, "alice")
	video := seedVideo(t, db, alice.ID, "first", true)

	published, err := repo.TogglePublished(video.ID)
	require.NoError(t, err)
	assert.False(t, published)

	published, err = repo.TogglePublished(video.ID)
	require.NoError(t, err)
	assert.True(t, published)
}

func TestVideoIncrementViewCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)
	alice := seedUser(t, db, "alice")
	video := seedVideo(t, db, alice.ID, "first", true)

	require.NoError(t, repo.IncrementViewCount(video.ID))
	require.NoError(t, repo.IncrementViewCount(video.ID))

	got, err := repo.GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
}
