package handler

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/api/middleware"
	"playtube-go/internal/api/response"
	"playtube-go/internal/service"
	"playtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetChannelProfile GET /api/v1/users/channel/:userName（公开，登录后附带订阅状态）
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	userName := c.Param("userName")
	if userName == "" {
		response.InvalidIdentifier(c, "无效的用户名")
		return
	}

	profile, err := h.userService.GetChannelProfile(userName, middleware.GetViewerID(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取频道主页成功", profile)
}

// UpdateAccount PATCH /api/v1/users/me
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.userService.UpdateAccount(currentUserID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新账号资料成功", info)
}

// UpdateAvatar PATCH /api/v1/users/me/avatar（multipart）
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", func(userID int64, path string) (*dto.UserInfo, error) {
		return h.userService.UpdateAvatar(userID, path)
	})
}

// UpdateCoverImage PATCH /api/v1/users/me/cover-image（multipart）
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "cover_image", func(userID int64, path string) (*dto.UserInfo, error) {
		return h.userService.UpdateCoverImage(userID, path)
	})
}

func (h *UserHandler) updateImage(c *gin.Context, field string, update func(int64, string) (*dto.UserInfo, error)) {
	path, err := saveTempFile(c, field)
	if err != nil {
		handleTempFileError(c, err)
		return
	}
	defer removeTempFiles(path)

	if path == "" {
		response.BadRequest(c, "请上传图片文件")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := update(currentUserID, path)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新图片成功", info)
}

// ListWatchHistory GET /api/v1/users/me/watch-history
func (h *UserHandler) ListWatchHistory(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.userService.ListWatchHistory(currentUserID, parsePageQuery(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取观看历史成功", data)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate), errors.Is(err, service.ErrAvatarRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
