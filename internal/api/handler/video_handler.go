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

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Publish POST /api/v1/videos（multipart，video_file 必传、thumbnail 可选）
func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoPath, err := saveTempFile(c, "video_file")
	if err != nil {
		handleTempFileError(c, err)
		return
	}
	thumbPath, err := saveTempFile(c, "thumbnail")
	if err != nil {
		removeTempFiles(videoPath)
		handleTempFileError(c, err)
		return
	}
	defer removeTempFiles(videoPath, thumbPath)

	if videoPath == "" {
		response.BadRequest(c, "请上传视频文件")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Publish(currentUserID, &req, videoPath, thumbPath)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "发布视频成功", info)
}

// List GET /api/v1/videos（公开，支持搜索 / 作者过滤 / 排序）
func (h *VideoHandler) List(c *gin.Context) {
	var query dto.VideoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "查询参数无效: "+err.Error())
		return
	}

	data, err := h.videoService.List(&query, middleware.GetViewerID(c))
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "获取视频列表成功", data)
}

// GetDetail GET /api/v1/videos/:id（公开，登录后附带观察者状态）
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	detail, err := h.videoService.GetDetail(videoID, middleware.GetViewerID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取视频详情成功", detail)
}

// Update PATCH /api/v1/videos/:id（仅所有者，可通过 multipart 换封面）
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	var req dto.VideoUpdateRequest
	thumbPath := ""

	if c.ContentType() == "multipart/form-data" {
		if err := c.ShouldBind(&req); err != nil {
			response.BadRequest(c, "请求参数无效: "+err.Error())
			return
		}
		var err error
		if thumbPath, err = saveTempFile(c, "thumbnail"); err != nil {
			handleTempFileError(c, err)
			return
		}
		defer removeTempFiles(thumbPath)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "请求参数无效: "+err.Error())
			return
		}
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Update(videoID, currentUserID, &req, thumbPath)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "更新视频成功", info)
}

// Delete DELETE /api/v1/videos/:id（仅所有者）
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Delete(videoID, currentUserID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "删除视频成功", nil)
}

// TogglePublish PATCH /api/v1/videos/:id/toggle-publish（仅所有者）
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id", "无效的视频ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	published, err := h.videoService.TogglePublish(videoID, currentUserID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "切换发布状态成功", dto.PublishToggleData{IsPublished: published})
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrVideoFileRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
