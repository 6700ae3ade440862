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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideoLike POST /api/v1/likes/toggle/video/:id
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	liked, err := h.likeService.ToggleVideoLike(currentUserID, videoID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "切换点赞成功", dto.LikeToggleData{Liked: liked})
}

// ToggleCommentLike POST /api/v1/likes/toggle/comment/:id
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id", "无效的评论ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	liked, err := h.likeService.ToggleCommentLike(currentUserID, commentID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "切换点赞成功", dto.LikeToggleData{Liked: liked})
}

// ToggleTweetLike POST /api/v1/likes/toggle/tweet/:id
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "id", "无效的动态ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	liked, err := h.likeService.ToggleTweetLike(currentUserID, tweetID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "切换点赞成功", dto.LikeToggleData{Liked: liked})
}

// ListLikedVideos GET /api/v1/likes/videos
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ListLikedVideos(currentUserID, parsePageQuery(c))
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "获取点赞视频成功", data)
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
