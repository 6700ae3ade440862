package service

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrTweetNotFound     = errors.New("动态不存在")
	ErrTweetNoPermission = errors.New("没有权限操作该动态")
)

type TweetService struct {
	tweetRepo *repository.TweetRepository
	likeRepo  *repository.LikeRepository
	userRepo  *repository.UserRepository
}

func NewTweetService(
	tweetRepo *repository.TweetRepository,
	likeRepo *repository.LikeRepository,
	userRepo *repository.UserRepository,
) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		likeRepo:  likeRepo,
		userRepo:  userRepo,
	}
}

// Create 发布动态
func (s *TweetService) Create(viewerID int64, req *dto.TweetCreateRequest) (*dto.TweetInfo, error) {
	tweet := &model.Tweet{
		Content: req.Content,
		OwnerID: viewerID,
	}

	if err := s.tweetRepo.Create(tweet); err != nil {
		return nil, err
	}

	return toTweetInfo(tweet, nil), nil
}

// Update 修改动态内容（仅所有者）
func (s *TweetService) Update(tweetID, viewerID int64, req *dto.TweetUpdateRequest) (*dto.TweetInfo, error) {
	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}

	if err := assertOwner(tweet.OwnerID, viewerID, ErrTweetNoPermission); err != nil {
		return nil, err
	}

	if err := s.tweetRepo.UpdateContent(tweetID, req.Content); err != nil {
		return nil, err
	}

	tweet.Content = req.Content
	return toTweetInfo(tweet, nil), nil
}

// Delete 删除动态（仅所有者）
func (s *TweetService) Delete(tweetID, viewerID int64) error {
	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTweetNotFound
		}
		return err
	}

	if err := assertOwner(tweet.OwnerID, viewerID, ErrTweetNoPermission); err != nil {
		return err
	}

	return s.tweetRepo.Delete(tweetID)
}

// ListByOwner 获取用户的动态页：作者信息、点赞数、观察者点赞状态
func (s *TweetService) ListByOwner(ownerID, viewerID int64, page *dto.PageQuery) (*dto.PageData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page.Normalize()

	tweets, total, err := s.tweetRepo.ListByOwner(ownerID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	tweetIDs := make([]int64, 0, len(tweets))
	for i := range tweets {
		tweetIDs = append(tweetIDs, tweets[i].ID)
	}

	likeCounts, err := s.likeRepo.CountByTweets(tweetIDs)
	if err != nil {
		return nil, err
	}

	likedSet := make(map[int64]bool)
	if viewerID != 0 {
		likedSet, err = s.likeRepo.BatchCheckTweetLiked(viewerID, tweetIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.TweetInfo, 0, len(tweets))
	for i := range tweets {
		t := &tweets[i]
		info := toTweetInfo(t, &t.Owner)
		info.LikesCount = likeCounts[t.ID]
		info.IsLiked = likedSet[t.ID]
		items = append(items, *info)
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}

// toTweetInfo 将 model.Tweet 转换为 dto.TweetInfo
func toTweetInfo(tweet *model.Tweet, owner *model.User) *dto.TweetInfo {
	info := &dto.TweetInfo{
		ID:        tweet.ID,
		Content:   tweet.Content,
		OwnerID:   tweet.OwnerID,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}

	if owner != nil && owner.ID != 0 {
		info.Owner = toOwnerBrief(owner)
	}

	return info
}
