package service

import (
	"testing"

	"playtube-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")

	tweet, err := env.tweets.Create(alice.ID, &dto.TweetCreateRequest{Content: "hello"})
	require.NoError(t, err)

	_, err = env.tweets.Update(tweet.ID, bob.ID, &dto.TweetUpdateRequest{Content: "hacked"})
	assert.ErrorIs(t, err, ErrTweetNoPermission)

	assert.ErrorIs(t, env.tweets.Delete(tweet.ID, bob.ID), ErrTweetNoPermission)

	updated, err := env.tweets.Update(tweet.ID, alice.ID, &dto.TweetUpdateRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, env.tweets.Delete(tweet.ID, alice.ID))
	assert.ErrorIs(t, env.tweets.Delete(tweet.ID, alice.ID), ErrTweetNotFound)
}

func TestTweetListByOwnerWithViewerLikes(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")

	first, err := env.tweets.Create(alice.ID, &dto.TweetCreateRequest{Content: "first"})
	require.NoError(t, err)
	_, err = env.tweets.Create(alice.ID, &dto.TweetCreateRequest{Content: "second"})
	require.NoError(t, err)

	_, err = env.likes.ToggleTweetLike(bob.ID, first.ID)
	require.NoError(t, err)

	page, err := env.tweets.ListByOwner(alice.ID, bob.ID, &dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	items, ok := page.Items.([]dto.TweetInfo)
	require.True(t, ok)
	require.Len(t, items, 2)

	assert.Equal(t, "second", items[0].Content)
	assert.False(t, items[0].IsLiked)
	assert.Zero(t, items[0].LikesCount)

	assert.Equal(t, "first", items[1].Content)
	assert.True(t, items[1].IsLiked)
	assert.Equal(t, int64(1), items[1].LikesCount)
	require.NotNil(t, items[1].Owner)
	assert.Equal(t, "alice", items[1].Owner.UserName)
}

func TestTweetListByOwnerRequiresUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tweets.ListByOwner(12345, 0, &dto.PageQuery{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
