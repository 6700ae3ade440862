package model

import "time"

// Playlist 播放列表模型
type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:播放列表ID" json:"id"`
	OwnerID     int64     `gorm:"not null;index:idx_playlists_owner_id;comment:所有者用户ID" json:"owner_id"`
	Name        string    `gorm:"size:200;not null;comment:名称" json:"name"`
	Description string    `gorm:"type:text;comment:描述" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表视频成员，(playlist_id, video_id) 唯一，按加入时间有序
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:成员记录ID" json:"id"`
	PlaylistID int64     `gorm:"not null;uniqueIndex:uq_playlist_video;index:idx_pv_playlist_id;comment:播放列表ID" json:"playlist_id"`
	VideoID    int64     `gorm:"not null;uniqueIndex:uq_playlist_video;comment:视频ID" json:"video_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:加入时间" json:"created_at"`

	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
