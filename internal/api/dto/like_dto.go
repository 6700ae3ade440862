package dto

import "time"

// LikeToggleData 点赞切换结果
type LikeToggleData struct {
	Liked bool `json:"liked"`
}

// LikedVideoInfo 点赞过的视频条目
type LikedVideoInfo struct {
	LikedAt time.Time `json:"liked_at"`
	Video   VideoInfo `json:"video"`
}
