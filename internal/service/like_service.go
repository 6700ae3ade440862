package service

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo    *repository.LikeRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	tweetRepo   *repository.TweetRepository
}

func NewLikeService(
	likeRepo *repository.LikeRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	tweetRepo *repository.TweetRepository,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// ToggleVideoLike 翻转视频点赞，目标必须存在，返回翻转后的状态
func (s *LikeService) ToggleVideoLike(viewerID, videoID int64) (bool, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrVideoNotFound
		}
		return false, err
	}
	return s.likeRepo.ToggleVideoLike(viewerID, videoID)
}

// ToggleCommentLike 翻转评论点赞
func (s *LikeService) ToggleCommentLike(viewerID, commentID int64) (bool, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCommentNotFound
		}
		return false, err
	}
	return s.likeRepo.ToggleCommentLike(viewerID, commentID)
}

// ToggleTweetLike 翻转动态点赞
func (s *LikeService) ToggleTweetLike(viewerID, tweetID int64) (bool, error) {
	if _, err := s.tweetRepo.GetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrTweetNotFound
		}
		return false, err
	}
	return s.likeRepo.ToggleTweetLike(viewerID, tweetID)
}

// ListLikedVideos 获取观察者点赞过的视频页，目标已删除的点赞被过滤
func (s *LikeService) ListLikedVideos(viewerID int64, page *dto.PageQuery) (*dto.PageData, error) {
	page.Normalize()

	likes, total, err := s.likeRepo.ListLikedVideos(viewerID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LikedVideoInfo, 0, len(likes))
	for i := range likes {
		like := &likes[i]
		if like.Video == nil {
			continue
		}
		items = append(items, dto.LikedVideoInfo{
			LikedAt: like.CreatedAt,
			Video:   *toVideoInfo(like.Video, true),
		})
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}
