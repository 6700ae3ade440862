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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/v1/videos/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Create(videoID, currentUserID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "发表评论成功", info)
}

// ListByVideo GET /api/v1/videos/:id/comments（公开，登录后附带点赞状态）
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	data, err := h.commentService.ListByVideo(videoID, middleware.GetViewerID(c), parsePageQuery(c))
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "获取评论列表成功", data)
}

// Update PATCH /api/v1/comments/:id（仅所有者）
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "无效的评论ID")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Update(commentID, currentUserID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "修改评论成功", info)
}

// Delete DELETE /api/v1/comments/:id（仅所有者）
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "无效的评论ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(commentID, currentUserID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "删除评论成功", nil)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentNoPermission):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
