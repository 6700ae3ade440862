package service

import (
	"testing"

	"playtube-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionToggleRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")

	subscribed, err := env.subscription.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = env.subscription.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSubscriptionToggleRejectsSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")

	_, err := env.subscription.Toggle(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrCannotSubscribeSelf)
}

func TestSubscriptionToggleRequiresChannel(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")

	_, err := env.subscription.Toggle(alice.ID, 12345)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestSubscriptionLists(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")
	carol := env.createUser(t, "carol", "password123")

	_, err := env.subscription.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.subscription.Toggle(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.subscription.Toggle(bob.ID, carol.ID)
	require.NoError(t, err)

	page, err := env.subscription.ListSubscribers(alice.ID, &dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	subscribers, ok := page.Items.([]dto.SubscriberInfo)
	require.True(t, ok)
	require.Len(t, subscribers, 2)
	// 最近订阅的在前
	assert.Equal(t, "carol", subscribers[0].Subscriber.UserName)
	assert.Equal(t, "bob", subscribers[1].Subscriber.UserName)

	page, err = env.subscription.ListSubscribedChannels(bob.ID, &dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	channels := page.Items.([]dto.SubscribedChannelInfo)
	require.Len(t, channels, 2)
	assert.Equal(t, "carol", channels[0].Channel.UserName)
	assert.Equal(t, "alice", channels[1].Channel.UserName)
}
