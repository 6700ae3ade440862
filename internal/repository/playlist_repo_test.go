package repository

import (
	"testing"

	"playtube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistAddVideoIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	alice := seedUser(t, db, "alice")
	video := seedVideo(t, db, alice.ID, "first", true)

	playlist := &model.Playlist{OwnerID: alice.ID, Name: "favorites"}
	require.NoError(t, repo.Create(playlist))

	require.NoError(t, repo.AddVideo(playlist.ID, video.ID))
	require.NoError(t, repo.AddVideo(playlist.ID, video.ID))

	var rows int64
	require.NoError(t, db.Model(&model.PlaylistVideo{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	removed, err := repo.RemoveVideo(playlist.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveVideo(playlist.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPlaylistListVideosPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	alice := seedUser(t, db, "alice")
	published := seedVideo(t, db, alice.ID, "published", true)
	draft := seedVideo(t, db, alice.ID, "draft", false)

	playlist := &model.Playlist{OwnerID: alice.ID, Name: "mixed"}
	require.NoError(t, repo.Create(playlist))
	require.NoError(t, repo.AddVideo(playlist.ID, published.ID))
	require.NoError(t, repo.AddVideo(playlist.ID, draft.ID))

	visible, err := repo.ListVideos(playlist.ID, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, published.ID, visible[0].ID)
	assert.Equal(t, "alice", visible[0].Owner.UserName)

	all, err := repo.ListVideos(playlist.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPlaylistDeleteRemovesMembers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	alice := seedUser(t, db, "alice")
	video := seedVideo(t, db, alice.ID, "first", true)

	playlist := &model.Playlist{OwnerID: alice.ID, Name: "favorites"}
	require.NoError(t, repo.Create(playlist))
	require.NoError(t, repo.AddVideo(playlist.ID, video.ID))

	require.NoError(t, repo.Delete(playlist.ID))

	var members int64
	require.NoError(t, db.Model(&model.PlaylistVideo{}).Count(&members).Error)
	assert.Equal(t, int64(0), members)
}
