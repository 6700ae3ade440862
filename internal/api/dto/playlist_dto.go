package dto

import "time"

// PlaylistCreateRequest 创建播放列表请求
type PlaylistCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// PlaylistUpdateRequest 更新播放列表请求
type PlaylistUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// PlaylistInfo 播放列表信息
type PlaylistInfo struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Owner       *OwnerBrief `json:"owner,omitempty"`
	TotalVideos int64       `json:"total_videos"`
	TotalViews  int64       `json:"total_views"`
}

// PlaylistDetail 播放列表详情，内嵌已发布视频
type PlaylistDetail struct {
	PlaylistInfo
	Videos []VideoInfo `json:"videos"`
}
