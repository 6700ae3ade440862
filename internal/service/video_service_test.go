package service

import (
	"testing"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoGetDetailComposition(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", "password123")
	viewer := env.createUser(t, "bob", "password123")
	video := env.createVideo(t, owner.ID, "first", true)

	_, err := env.likeRepo.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	_, err = env.subRepo.Toggle(viewer.ID, owner.ID)
	require.NoError(t, err)

	detail, err := env.videos.GetDetail(video.ID, viewer.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), detail.LikesCount)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, int64(1), detail.SubscriberCount)
	assert.True(t, detail.IsSubscribed)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, "alice", detail.Owner.UserName)
	assert.Equal(t, int64(1), detail.ViewCount)

	// 再次访问：播放量继续累加，观看历史保持集合语义
	detail, err = env.videos.GetDetail(video.ID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.ViewCount)

	_, total, err := env.userRepo.ListWatchHistory(viewer.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestVideoGetDetailAnonymousViewer(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", "password123")
	video := env.createVideo(t, owner.ID, "first", true)

	detail, err := env.videos.GetDetail(video.ID, 0)
	require.NoError(t, err)

	assert.False(t, detail.IsLiked)
	assert.False(t, detail.IsSubscribed)
	assert.Equal(t, int64(1), detail.ViewCount)

	var histories int64
	require.NoError(t, env.db.Model(&model.WatchHistory{}).Count(&histories).Error)
	assert.Equal(t, int64(0), histories)
}

func TestVideoGetDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.videos.GetDetail(12345, 0)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoListSecondPage(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", "password123")
	env.createVideo(t, owner.ID, "first", true)
	second := env.createVideo(t, owner.ID, "second", true)
	env.createVideo(t, owner.ID, "third", true)

	query := &dto.VideoListQuery{PageQuery: dto.PageQuery{Page: 2, Limit: 1}}
	page, err := env.videos.List(query, owner.ID)
	require.NoError(t, err)

	items, ok := page.Items.([]dto.VideoInfo)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestVideoUpdateOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", "password123")
	intruder := env.createUser(t, "bob", "password123")
	video := env.createVideo(t, owner.ID, "first", true)

	newTitle := "renamed"
	_, err := env.videos.Update(video.ID, intruder.ID, &dto.VideoUpdateRequest{Title: &newTitle}, "")
	assert.ErrorIs(t, err, ErrVideoNoPermission)

	info, err := env.videos.Update(video.ID, owner.ID, &dto.VideoUpdateRequest{Title: &newTitle}, "")
	require.NoError(t, err)
	assert.Equal(t, "renamed", info.Title)

	_, err = env.videos.Update(video.ID, owner.ID, &dto.VideoUpdateRequest{}, "")
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestVideoDeleteOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", "password123")
	intruder := env.createUser(t, "bob", "password123")
	video := env.createVideo(t, owner.ID, "first", true)

	err := env.videos.Delete(video.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrVideoNoPermission)

	require.NoError(t, env.videos.Delete(video.ID, owner.ID))

	_, err = env.videos.GetDetail(video.ID, 0)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoTogglePublish(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alice", "password123")
	video := env.createVideo(t, owner.ID, "first", true)

	published, err := env.videos.TogglePublish(video.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, published)

	// 未发布的视频不出现在列表里
	page, err := env.videos.List(&dto.VideoListQuery{}, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalItems)

	published, err = env.videos.TogglePublish(video.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, published)
}
