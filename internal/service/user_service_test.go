package service

import (
	"testing"

	"playtube-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChannelProfile(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")
	carol := env.createUser(t, "carol", "password123")

	_, err := env.subscription.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.subscription.Toggle(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.subscription.Toggle(alice.ID, carol.ID)
	require.NoError(t, err)

	profile, err := env.users.GetChannelProfile("alice", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.UserName)
	assert.Equal(t, int64(2), profile.SubscriberCount)
	assert.Equal(t, int64(1), profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)

	// 匿名观察者不计算订阅状态
	profile, err = env.users.GetChannelProfile("alice", 0)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = env.users.GetChannelProfile("nobody", 0)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestUpdateAccount(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")

	taken := bob.Email
	_, err := env.users.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = env.users.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	fullName := "Alice Doe"
	email := "alice.doe@example.com"
	info, err := env.users.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{FullName: &fullName, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", info.FullName)
	assert.Equal(t, "alice.doe@example.com", info.Email)

	// 更新为自己当前邮箱不算冲突
	_, err = env.users.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{Email: &email})
	require.NoError(t, err)
}

func TestListWatchHistory(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")
	first := env.createVideo(t, alice.ID, "first", true)
	second := env.createVideo(t, alice.ID, "second", true)

	_, err := env.videos.GetDetail(first.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.videos.GetDetail(second.ID, bob.ID)
	require.NoError(t, err)
	// 重复观看不产生新条目
	_, err = env.videos.GetDetail(first.ID, bob.ID)
	require.NoError(t, err)

	page, err := env.users.ListWatchHistory(bob.ID, &dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	items, ok := page.Items.([]dto.VideoInfo)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
	require.NotNil(t, items[0].Owner)
	assert.Equal(t, "alice", items[0].Owner.UserName)
}
