package service

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrChannelNotFound     = errors.New("频道不存在")
	ErrCannotSubscribeSelf = errors.New("不能订阅自己的频道")
)

type SubscriptionService struct {
	subRepo  *repository.SubscriptionRepository
	userRepo *repository.UserRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, userRepo *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo}
}

// Toggle 翻转订阅关系，不能订阅自己，返回翻转后的状态
func (s *SubscriptionService) Toggle(viewerID, channelID int64) (bool, error) {
	if viewerID == channelID {
		return false, ErrCannotSubscribeSelf
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrChannelNotFound
		}
		return false, err
	}

	return s.subRepo.Toggle(viewerID, channelID)
}

// ListSubscribers 获取频道的订阅者页
func (s *SubscriptionService) ListSubscribers(channelID int64, page *dto.PageQuery) (*dto.PageData, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	page.Normalize()

	subs, total, err := s.subRepo.ListSubscribers(channelID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubscriberInfo, 0, len(subs))
	for i := range subs {
		items = append(items, dto.SubscriberInfo{
			SubscribedAt: subs[i].CreatedAt,
			Subscriber:   *toOwnerBrief(&subs[i].Subscriber),
		})
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}

// ListSubscribedChannels 获取用户订阅的频道页
func (s *SubscriptionService) ListSubscribedChannels(subscriberID int64, page *dto.PageQuery) (*dto.PageData, error) {
	if _, err := s.userRepo.GetByID(subscriberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page.Normalize()

	subs, total, err := s.subRepo.ListSubscribedChannels(subscriberID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubscribedChannelInfo, 0, len(subs))
	for i := range subs {
		items = append(items, dto.SubscribedChannelInfo{
			SubscribedAt: subs[i].CreatedAt,
			Channel:      *toOwnerBrief(&subs[i].Channel),
		})
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}
