package dto

import "time"

// SubscriptionToggleData 订阅切换结果
type SubscriptionToggleData struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriberInfo 频道订阅者条目
type SubscriberInfo struct {
	SubscribedAt time.Time  `json:"subscribed_at"`
	Subscriber   OwnerBrief `json:"subscriber"`
}

// SubscribedChannelInfo 用户订阅的频道条目
type SubscribedChannelInfo struct {
	SubscribedAt time.Time  `json:"subscribed_at"`
	Channel      OwnerBrief `json:"channel"`
}
