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

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create POST /api/v1/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.Create(currentUserID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "创建播放列表成功", info)
}

// GetDetail GET /api/v1/playlists/:id（公开，仅内嵌已发布视频）
func (h *PlaylistHandler) GetDetail(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "id", "无效的播放列表ID")
	if !ok {
		return
	}

	detail, err := h.playlistService.GetDetail(playlistID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取播放列表详情成功", detail)
}

// Update PATCH /api/v1/playlists/:id（仅所有者）
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "id", "无效的播放列表ID")
	if !ok {
		return
	}

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.Update(playlistID, currentUserID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "更新播放列表成功", info)
}

// Delete DELETE /api/v1/playlists/:id（仅所有者）
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "id", "无效的播放列表ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.Delete(playlistID, currentUserID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "删除播放列表成功", nil)
}

// AddVideo POST /api/v1/playlists/:id/videos/:videoId（仅所有者，幂等）
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "id", "无效的播放列表ID")
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "无效的视频ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.AddVideo(playlistID, videoID, currentUserID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "添加视频成功", nil)
}

// RemoveVideo DELETE /api/v1/playlists/:id/videos/:videoId（仅所有者）
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "id", "无效的播放列表ID")
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "无效的视频ID")
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.RemoveVideo(playlistID, videoID, currentUserID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "移除视频成功", nil)
}

// ListByOwner GET /api/v1/playlists/user/:userId（公开）
func (h *PlaylistHandler) ListByOwner(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "无效的用户ID")
	if !ok {
		return
	}

	data, err := h.playlistService.ListByOwner(userID, parsePageQuery(c))
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取播放列表成功", data)
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPlaylistNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrVideoNotInPlaylist), errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Playlist operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
