package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentUpdateRequest 修改评论请求
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentInfo 评论信息，含观察者相关字段
type CommentInfo struct {
	ID         int64       `json:"id"`
	Content    string      `json:"content"`
	VideoID    int64       `json:"video_id"`
	OwnerID    int64       `json:"owner_id"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Owner      *OwnerBrief `json:"owner,omitempty"`
	LikesCount int64       `json:"likes_count"`
	IsLiked    bool        `json:"is_liked"`
}
