package model

import "time"

// Like 点赞模型，video_id / comment_id / tweet_id 三者恰有一个非空。
// 各组合唯一索引保证同一用户对同一目标至多一条记录；
// 可空列为 NULL 时不参与唯一冲突，恰好只约束对应类型的目标。
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	LikedByID int64     `gorm:"not null;uniqueIndex:uq_like_video;uniqueIndex:uq_like_comment;uniqueIndex:uq_like_tweet;index:idx_likes_liked_by;comment:点赞用户ID" json:"liked_by_id"`
	VideoID   *int64    `gorm:"uniqueIndex:uq_like_video;index:idx_likes_video_id;comment:被点赞视频ID" json:"video_id"`
	CommentID *int64    `gorm:"uniqueIndex:uq_like_comment;index:idx_likes_comment_id;comment:被点赞评论ID" json:"comment_id"`
	TweetID   *int64    `gorm:"uniqueIndex:uq_like_tweet;index:idx_likes_tweet_id;comment:被点赞动态ID" json:"tweet_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_likes_created_at;comment:点赞时间" json:"created_at"`

	// 关联关系
	LikedBy User   `gorm:"foreignKey:LikedByID" json:"liked_by,omitempty"`
	Video   *Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
