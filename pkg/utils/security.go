package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"playtube-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenKind 令牌类型
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims 自定义 JWT Claims
type Claims struct {
	UserID int64     `json:"user_id"`
	Kind   TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// HashPassword 使用 bcrypt 对密码进行哈希
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword 验证密码是否与哈希匹配
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateAccessToken 生成短期访问令牌（自包含，不落库）
func GenerateAccessToken(userID int64) (string, error) {
	jwtCfg := config.GetJWT()
	return generateToken(userID, TokenKindAccess, jwtCfg.AccessSecret, jwtCfg.AccessExpireDuration())
}

// GenerateRefreshToken 生成长期刷新令牌（持久化到用户记录，轮换时整体替换）
func GenerateRefreshToken(userID int64) (string, error) {
	jwtCfg := config.GetJWT()
	return generateToken(userID, TokenKindRefresh, jwtCfg.RefreshSecret, jwtCfg.RefreshExpireDuration())
}

func generateToken(userID int64, kind TokenKind, secret string, expire time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.GetApp().Name,
			// jti 保证同一秒内签发的令牌互不相同，刷新轮换依赖逐字节比较
			ID: strconv.FormatInt(time.Now().UnixNano(), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken 解析并验证访问令牌
func ParseAccessToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, TokenKindAccess, config.GetJWT().AccessSecret)
}

// ParseRefreshToken 解析并验证刷新令牌
func ParseRefreshToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, TokenKindRefresh, config.GetJWT().RefreshSecret)
}

func parseToken(tokenString string, kind TokenKind, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Kind != kind {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
