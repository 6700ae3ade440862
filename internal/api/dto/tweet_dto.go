package dto

import "time"

// TweetCreateRequest 发布动态请求
type TweetCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// TweetUpdateRequest 修改动态请求
type TweetUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// TweetInfo 动态信息，含观察者相关字段
type TweetInfo struct {
	ID         int64       `json:"id"`
	Content    string      `json:"content"`
	OwnerID    int64       `json:"owner_id"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Owner      *OwnerBrief `json:"owner,omitempty"`
	LikesCount int64       `json:"likes_count"`
	IsLiked    bool        `json:"is_liked"`
}
