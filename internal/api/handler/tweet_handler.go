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

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create POST /api/v1/tweets
func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.tweetService.Create(currentUserID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.Created(c, "发布动态成功", info)
}

// ListByOwner GET /api/v1/tweets/user/:userId（公开，登录后附带点赞状态）
func (h *TweetHandler) ListByOwner(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "无效的用户ID")
	if !ok {
		return
	}

	data, err := h.tweetService.ListByOwner(userID, middleware.GetViewerID(c), parsePageQuery(c))
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "获取动态列表成功", data)
}

// Update PATCH /api/v1/tweets/:id（仅所有者）
func (h *TweetHandler) Update(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "id", "无效的动态ID")
	if !ok {
		return
	}

	var req dto.TweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.tweetService.Update(tweetID, currentUserID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "修改动态成功", info)
}

// Delete DELETE /api/v1/tweets/:id（仅所有者）
func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "id", "无效的动态ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.tweetService.Delete(tweetID, currentUserID); err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "删除动态成功", nil)
}

func handleTweetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTweetNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrTweetNoPermission):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Tweet operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
