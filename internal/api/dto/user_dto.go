package dto

import "time"

// UserInfo 用户公开信息（不含密码与刷新令牌）
type UserInfo struct {
	ID         int64     `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"cover_image"`
	CreatedAt  time.Time `json:"created_at"`
}

// OwnerBrief 嵌套在视频/评论/动态中的作者简要信息
type OwnerBrief struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// ChannelProfile 频道主页，含观察者相关字段
type ChannelProfile struct {
	UserInfo
	SubscriberCount           int64 `json:"subscriber_count"`
	ChannelsSubscribedToCount int64 `json:"channels_subscribed_to_count"`
	IsSubscribed              bool  `json:"is_subscribed"`
}

// AccountUpdateRequest 账号资料更新请求
type AccountUpdateRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
}
