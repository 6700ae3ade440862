package dto

import "time"

// VideoUploadRequest 视频发布请求（multipart/form-data，视频与封面文件另传）
type VideoUploadRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"omitempty"`
}

// VideoUpdateRequest 视频元数据更新请求（JSON 或 multipart 表单）
type VideoUpdateRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" form:"description"`
}

// VideoListQuery 视频列表查询参数
type VideoListQuery struct {
	PageQuery
	Query    string `form:"query" binding:"omitempty,max=200"`
	UserID   int64  `form:"user_id" binding:"omitempty,min=1"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=created_at view_count duration title"`
	SortType string `form:"sort_type" binding:"omitempty,oneof=asc desc"`
}

// VideoInfo 视频信息
type VideoInfo struct {
	ID           int64       `json:"id"`
	OwnerID      int64       `json:"owner_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	VideoURL     string      `json:"video_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Duration     float64     `json:"duration"`
	ViewCount    int64       `json:"view_count"`
	IsPublished  bool        `json:"is_published"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Owner        *OwnerBrief `json:"owner,omitempty"`
}

// VideoDetail 视频详情，含观察者相关字段
type VideoDetail struct {
	VideoInfo
	LikesCount      int64 `json:"likes_count"`
	IsLiked         bool  `json:"is_liked"`
	SubscriberCount int64 `json:"subscriber_count"`
	IsSubscribed    bool  `json:"is_subscribed"`
}

// PublishToggleData 发布状态切换结果
type PublishToggleData struct {
	IsPublished bool `json:"is_published"`
}
