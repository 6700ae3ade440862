package service

import (
	"testing"

	"playtube-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateRequiresVideo(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")

	_, err := env.comments.Create(12345, alice.ID, &dto.CommentCreateRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestCommentOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")
	video := env.createVideo(t, alice.ID, "first", true)

	comment, err := env.comments.Create(video.ID, alice.ID, &dto.CommentCreateRequest{Content: "hello"})
	require.NoError(t, err)

	_, err = env.comments.Update(comment.ID, bob.ID, &dto.CommentUpdateRequest{Content: "hacked"})
	assert.ErrorIs(t, err, ErrCommentNoPermission)

	err = env.comments.Delete(comment.ID, bob.ID)
	assert.ErrorIs(t, err, ErrCommentNoPermission)

	updated, err := env.comments.Update(comment.ID, alice.ID, &dto.CommentUpdateRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, env.comments.Delete(comment.ID, alice.ID))

	err = env.comments.Delete(comment.ID, alice.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentListWithViewerLikes(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")
	video := env.createVideo(t, alice.ID, "first", true)

	first, err := env.comments.Create(video.ID, alice.ID, &dto.CommentCreateRequest{Content: "first"})
	require.NoError(t, err)
	_, err = env.comments.Create(video.ID, bob.ID, &dto.CommentCreateRequest{Content: "second"})
	require.NoError(t, err)

	_, err = env.likeRepo.ToggleCommentLike(bob.ID, first.ID)
	require.NoError(t, err)

	page, err := env.comments.ListByVideo(video.ID, bob.ID, &dto.PageQuery{})
	require.NoError(t, err)

	items, ok := page.Items.([]dto.CommentInfo)
	require.True(t, ok)
	require.Len(t, items, 2)

	// 最新评论在前
	assert.Equal(t, "second", items[0].Content)
	assert.Equal(t, "bob", items[0].Owner.UserName)
	assert.False(t, items[0].IsLiked)

	assert.Equal(t, "first", items[1].Content)
	assert.Equal(t, int64(1), items[1].LikesCount)
	assert.True(t, items[1].IsLiked)
}

func TestCommentListAnonymousViewer(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	video := env.createVideo(t, alice.ID, "first", true)

	comment, err := env.comments.Create(video.ID, alice.ID, &dto.CommentCreateRequest{Content: "hello"})
	require.NoError(t, err)
	_, err = env.likeRepo.ToggleCommentLike(alice.ID, comment.ID)
	require.NoError(t, err)

	page, err := env.comments.ListByVideo(video.ID, 0, &dto.PageQuery{})
	require.NoError(t, err)

	items := page.Items.([]dto.CommentInfo)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].LikesCount)
	assert.False(t, items[0].IsLiked)
}
