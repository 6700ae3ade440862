package service

import (
	"testing"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistDetailPublishedOnlyTotals(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")

	first := env.createVideo(t, alice.ID, "first", true)
	second := env.createVideo(t, alice.ID, "second", true)
	draft := env.createVideo(t, alice.ID, "draft", false)

	require.NoError(t, env.db.Model(&model.Video{}).Where("id = ?", first.ID).Update("view_count", 10).Error)
	require.NoError(t, env.db.Model(&model.Video{}).Where("id = ?", second.ID).Update("view_count", 5).Error)

	playlist, err := env.playlists.Create(alice.ID, &dto.PlaylistCreateRequest{Name: "favorites"})
	require.NoError(t, err)

	require.NoError(t, env.playlists.AddVideo(playlist.ID, first.ID, alice.ID))
	require.NoError(t, env.playlists.AddVideo(playlist.ID, second.ID, alice.ID))
	require.NoError(t, env.playlists.AddVideo(playlist.ID, draft.ID, alice.ID))

	detail, err := env.playlists.GetDetail(playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.TotalVideos)
	assert.Equal(t, int64(15), detail.TotalViews)

	require.Len(t, detail.Videos, 2)
	// 按加入顺序排列
	assert.Equal(t, "first", detail.Videos[0].Title)
	assert.Equal(t, "second", detail.Videos[1].Title)
	require.NotNil(t, detail.Videos[0].Owner)
	assert.Equal(t, "alice", detail.Videos[0].Owner.UserName)
}

func TestPlaylistOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")
	video := env.createVideo(t, alice.ID, "first", true)

	playlist, err := env.playlists.Create(alice.ID, &dto.PlaylistCreateRequest{Name: "favorites"})
	require.NoError(t, err)

	name := "stolen"
	_, err = env.playlists.Update(playlist.ID, bob.ID, &dto.PlaylistUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrPlaylistNoPermission)

	assert.ErrorIs(t, env.playlists.AddVideo(playlist.ID, video.ID, bob.ID), ErrPlaylistNoPermission)
	assert.ErrorIs(t, env.playlists.Delete(playlist.ID, bob.ID), ErrPlaylistNoPermission)

	updated, err := env.playlists.Update(playlist.ID, alice.ID, &dto.PlaylistUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "stolen", updated.Name)
}

func TestPlaylistAddRemoveVideo(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	video := env.createVideo(t, alice.ID, "first", true)

	playlist, err := env.playlists.Create(alice.ID, &dto.PlaylistCreateRequest{Name: "favorites"})
	require.NoError(t, err)

	require.NoError(t, env.playlists.AddVideo(playlist.ID, video.ID, alice.ID))
	// 重复添加幂等
	require.NoError(t, env.playlists.AddVideo(playlist.ID, video.ID, alice.ID))

	detail, err := env.playlists.GetDetail(playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.TotalVideos)

	require.NoError(t, env.playlists.RemoveVideo(playlist.ID, video.ID, alice.ID))
	assert.ErrorIs(t, env.playlists.RemoveVideo(playlist.ID, video.ID, alice.ID), ErrVideoNotInPlaylist)

	assert.ErrorIs(t, env.playlists.AddVideo(playlist.ID, 12345, alice.ID), ErrVideoNotFound)
}

func TestPlaylistDeleteCascadesMembers(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	video := env.createVideo(t, alice.ID, "first", true)

	playlist, err := env.playlists.Create(alice.ID, &dto.PlaylistCreateRequest{Name: "favorites"})
	require.NoError(t, err)
	require.NoError(t, env.playlists.AddVideo(playlist.ID, video.ID, alice.ID))

	require.NoError(t, env.playlists.Delete(playlist.ID, alice.ID))

	_, err = env.playlists.GetDetail(playlist.ID)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)

	var members int64
	require.NoError(t, env.db.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlist.ID).Count(&members).Error)
	assert.Zero(t, members)
}
