package repository

import (
	"playtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// ToggleVideoLike 翻转用户对视频的点赞，返回翻转后是否点赞
func (r *LikeRepository) ToggleVideoLike(userID, videoID int64) (bool, error) {
	return r.toggle(userID, "video_id", videoID, &model.Like{LikedByID: userID, VideoID: &videoID})
}

// ToggleCommentLike 翻转用户对评论的点赞
func (r *LikeRepository) ToggleCommentLike(userID, commentID int64) (bool, error) {
	return r.toggle(userID, "comment_id", commentID, &model.Like{LikedByID: userID, CommentID: &commentID})
}

// ToggleTweetLike 翻转用户对动态的点赞
func (r *LikeRepository) ToggleTweetLike(userID, tweetID int64) (bool, error) {
	return r.toggle(userID, "tweet_id", tweetID, &model.Like{LikedByID: userID, TweetID: &tweetID})
}

// toggle 单条件写翻转：先尝试删除，删到了即"取消"；否则插入，
// 唯一索引冲突时说明并发写已存在，按"已点赞"处理，不产生重复行
func (r *LikeRepository) toggle(userID int64, column string, targetID int64, like *model.Like) (bool, error) {
	result := r.db.Where("liked_by_id = ? AND "+column+" = ?", userID, targetID).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	result = r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return true, nil
}

// CountByVideo 统计视频的点赞数
func (r *LikeRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// IsVideoLiked 查询用户是否点赞了视频
func (r *LikeRepository) IsVideoLiked(userID, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("liked_by_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// CountByComments 批量统计评论的点赞数
func (r *LikeRepository) CountByComments(commentIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CommentID int64
		Count     int64
	}
	err := r.db.Model(&model.Like{}).
		Select("comment_id, COUNT(*) as count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CommentID] = row.Count
	}
	return counts, nil
}

// CountByTweets 批量统计动态的点赞数
func (r *LikeRepository) CountByTweets(tweetIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(tweetIDs))
	if len(tweetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TweetID int64
		Count   int64
	}
	err := r.db.Model(&model.Like{}).
		Select("tweet_id, COUNT(*) as count").
		Where("tweet_id IN ?", tweetIDs).
		Group("tweet_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TweetID] = row.Count
	}
	return counts, nil
}

// BatchCheckCommentLiked 批量查询用户对评论的点赞状态
func (r *LikeRepository) BatchCheckCommentLiked(userID int64, commentIDs []int64) (map[int64]bool, error) {
	return r.batchCheck(userID, "comment_id", commentIDs)
}

// BatchCheckTweetLiked 批量查询用户对动态的点赞状态
func (r *LikeRepository) BatchCheckTweetLiked(userID int64, tweetIDs []int64) (map[int64]bool, error) {
	return r.batchCheck(userID, "tweet_id", tweetIDs)
}

func (r *LikeRepository) batchCheck(userID int64, column string, targetIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var likedIDs []int64
	err := r.db.Model(&model.Like{}).
		Where("liked_by_id = ? AND "+column+" IN ?", userID, targetIDs).
		Pluck(column, &likedIDs).Error
	if err != nil {
		return nil, err
	}

	likedSet := make(map[int64]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}

	for _, id := range targetIDs {
		result[id] = likedSet[id]
	}
	return result, nil
}

// ListLikedVideos 获取用户点赞的视频点赞记录（含视频与作者），
// 内连接 videos 过滤掉目标视频已不存在的点赞，最新点赞在前
func (r *LikeRepository) ListLikedVideos(userID int64, skip, limit int) ([]model.Like, int64, error) {
	base := r.db.Model(&model.Like{}).
		Joins("INNER JOIN videos ON videos.id = likes.video_id").
		Where("likes.liked_by_id = ? AND likes.video_id IS NOT NULL", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var likes []model.Like
	err := base.
		Preload("Video").Preload("Video.Owner").
		Order("likes.created_at DESC, likes.id DESC").
		Offset(skip).Limit(limit).
		Find(&likes).Error
	if err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}
