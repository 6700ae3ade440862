package handler

import (
	"errors"
	"net/http"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/api/middleware"
	"playtube-go/internal/api/response"
	"playtube-go/internal/config"
	"playtube-go/internal/service"
	"playtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register POST /api/v1/auth/register（multipart，avatar 必传、cover_image 可选）
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	avatarPath, err := saveTempFile(c, "avatar")
	if err != nil {
		handleTempFileError(c, err)
		return
	}
	coverPath, err := saveTempFile(c, "cover_image")
	if err != nil {
		removeTempFiles(avatarPath)
		handleTempFileError(c, err)
		return
	}
	defer removeTempFiles(avatarPath, coverPath)

	if avatarPath == "" {
		response.BadRequest(c, "请上传头像文件")
		return
	}

	info, err := h.authService.Register(&req, avatarPath, coverPath)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "注册成功", info)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if req.Identifier() == "" {
		response.BadRequest(c, "用户名和邮箱至少填写一个")
		return
	}

	pair, err := h.authService.Login(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	setAuthCookies(c, pair)
	response.OK(c, "登录成功", pair)
}

// Refresh POST /api/v1/auth/refresh（令牌来自 Cookie 或 body）
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = c.Cookie(middleware.RefreshTokenCookie)
	}
	if refreshToken == "" {
		response.Unauthorized(c, "缺少刷新令牌")
		return
	}

	pair, err := h.authService.Refresh(refreshToken)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	setAuthCookies(c, pair)
	response.OK(c, "刷新成功", pair)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.authService.Logout(currentUserID); err != nil {
		handleAuthError(c, err)
		return
	}

	clearAuthCookies(c)
	response.OK(c, "注销成功", nil)
}

// GetCurrent GET /api/v1/auth/me
func (h *AuthHandler) GetCurrent(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.GetCurrent(currentUserID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "获取当前用户成功", info)
}

// ChangePassword POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.authService.ChangePassword(currentUserID, &req); err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "修改密码成功", nil)
}

// setAuthCookies 令牌对同时经 HTTP-only Cookie 下发
func setAuthCookies(c *gin.Context, pair *dto.TokenPair) {
	jwtCfg := config.GetJWT()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken,
		int(jwtCfg.AccessExpireDuration().Seconds()), "/", "", false, true)
	c.SetCookie(middleware.RefreshTokenCookie, pair.RefreshToken,
		int(jwtCfg.RefreshExpireDuration().Seconds()), "/", "", false, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", false, true)
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrInvalidRefreshToken):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAvatarRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
