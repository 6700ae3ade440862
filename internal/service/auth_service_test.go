package service

import (
	"testing"

	"playtube-go/internal/api/dto"
	"playtube-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImageUploader 将图片上传替换为本地假实现，测试结束后恢复
func stubImageUploader(t *testing.T, fn func(prefix, owner, path string) (string, error)) {
	t.Helper()
	orig := uploadLocalImage
	uploadLocalImage = fn
	t.Cleanup(func() { uploadLocalImage = orig })
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	stubImageUploader(t, func(prefix, owner, path string) (string, error) {
		return "http://media.local/" + prefix + "/" + owner + ".png", nil
	})

	info, err := env.auth.Register(&dto.RegisterRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "password123",
	}, "/tmp/avatar.png", "")
	require.NoError(t, err)

	assert.Equal(t, "alice", info.UserName)
	assert.Equal(t, "alice@example.com", info.Email)
	assert.Equal(t, "Alice", info.FullName)
	assert.Equal(t, "http://media.local/avatars/alice.png", info.Avatar)
	assert.Empty(t, info.CoverImage)

	// 密码只落哈希，注册不签发刷新令牌
	user, err := env.userRepo.GetByUserName("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, utils.VerifyPassword("password123", user.Password))
	assert.Nil(t, user.RefreshToken)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "password123")

	_, err := env.auth.Register(&dto.RegisterRequest{
		UserName: "alice",
		Email:    "new@example.com",
		FullName: "Alice",
		Password: "password123",
	}, "/tmp/avatar.png", "")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = env.auth.Register(&dto.RegisterRequest{
		UserName: "alice2",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "password123",
	}, "/tmp/avatar.png", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterRequiresAvatar(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(&dto.RegisterRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "password123",
	}, "", "")
	assert.ErrorIs(t, err, ErrAvatarRequired)
}

func TestRegisterDuplicateAfterPrecheck(t *testing.T) {
	env := newTestEnv(t)

	// 预检通过后、写入前出现同名用户时由唯一索引兜底报冲突
	stubImageUploader(t, func(prefix, owner, path string) (string, error) {
		env.createUser(t, "alice", "password123")
		return "http://media.local/" + prefix + "/" + owner + ".png", nil
	})

	_, err := env.auth.Register(&dto.RegisterRequest{
		UserName: "alice",
		Email:    "other@example.com",
		FullName: "Alice",
		Password: "password123",
	}, "/tmp/avatar.png", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginByUserNameAndEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "password123")

	pair, err := env.auth.Login(&dto.LoginRequest{UserName: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	require.NotNil(t, pair.User)
	assert.Equal(t, "alice", pair.User.UserName)

	// 邮箱同样可以登录
	pair, err = env.auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// 登录后刷新令牌落库
	user, err := env.userRepo.GetByUserName("alice")
	require.NoError(t, err)
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, pair.RefreshToken, *user.RefreshToken)
}

func TestLoginInvalidCredential(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "password123")

	_, err := env.auth.Login(&dto.LoginRequest{UserName: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = env.auth.Login(&dto.LoginRequest{UserName: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefreshRotation(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", "password123")

	first, err := env.auth.Login(&dto.LoginRequest{UserName: "alice", Password: "password123"})
	require.NoError(t, err)

	second, err := env.auth.Refresh(first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// 旧令牌已被轮换替换，验签通过也不再接受
	_, err = env.auth.Refresh(first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// 新令牌可以继续轮换
	third, err := env.auth.Refresh(second.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, second.RefreshToken, third.RefreshToken)
}

func TestRefreshRejectsForgedToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "password123")

	_, err := env.auth.Login(&dto.LoginRequest{UserName: "alice", Password: "password123"})
	require.NoError(t, err)

	// 访问令牌不能当刷新令牌用
	accessToken, err := utils.GenerateAccessToken(user.ID)
	require.NoError(t, err)
	_, err = env.auth.Refresh(accessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = env.auth.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "password123")

	pair, err := env.auth.Login(&dto.LoginRequest{UserName: "alice", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(user.ID))

	got, err := env.userRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RefreshToken)

	// 注销后原刷新令牌失效
	_, err = env.auth.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "password123")

	err := env.auth.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "newpassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	require.NoError(t, env.auth.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpassword",
	}))

	_, err = env.auth.Login(&dto.LoginRequest{UserName: "alice", Password: "newpassword"})
	require.NoError(t, err)
}
