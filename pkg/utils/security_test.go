package utils

import (
	"testing"

	"playtube-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Set(&config.Config{
		App: config.AppConfig{Name: "playtube-test"},
		JWT: config.JWTConfig{
			AccessSecret:      "access-secret-for-tests",
			RefreshSecret:     "refresh-secret-for-tests",
			AccessExpireMin:   30,
			RefreshExpireDays: 10,
		},
	})
	m.Run()
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, VerifyPassword("password123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestTokenKindSeparation(t *testing.T) {
	access, err := GenerateAccessToken(42)
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenKindAccess, claims.Kind)

	claims, err = ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenKindRefresh, claims.Kind)

	// 访问令牌与刷新令牌不能互换使用
	_, err = ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensAreUniqueWithinSecond(t *testing.T) {
	first, err := GenerateRefreshToken(42)
	require.NoError(t, err)
	second, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
