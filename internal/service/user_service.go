package service

import (
	"errors"
	"fmt"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo *repository.UserRepository
	subRepo  *repository.SubscriptionRepository
}

func NewUserService(userRepo *repository.UserRepository, subRepo *repository.SubscriptionRepository) *UserService {
	return &UserService{userRepo: userRepo, subRepo: subRepo}
}

// GetChannelProfile 按用户名获取频道主页：订阅者数、订阅的频道数、
// 观察者是否已订阅
func (s *UserService) GetChannelProfile(userName string, viewerID int64) (*dto.ChannelProfile, error) {
	user, err := s.userRepo.GetByUserName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	subscriberCount, err := s.subRepo.CountSubscribers(user.ID)
	if err != nil {
		return nil, err
	}

	subscribedToCount, err := s.subRepo.CountSubscribedTo(user.ID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != 0 {
		if isSubscribed, err = s.subRepo.Exists(viewerID, user.ID); err != nil {
			return nil, err
		}
	}

	return &dto.ChannelProfile{
		UserInfo:                  *toUserInfo(user),
		SubscriberCount:           subscriberCount,
		ChannelsSubscribedToCount: subscribedToCount,
		IsSubscribed:              isSubscribed,
	}, nil
}

// UpdateAccount 更新账号资料，邮箱冲突时报占用
func (s *UserService) UpdateAccount(userID int64, req *dto.AccountUpdateRequest) (*dto.UserInfo, error) {
	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		if other, err := s.userRepo.GetByIdentifier(*req.Email); err == nil && other.ID != userID {
			return nil, ErrUserExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = *req.Email
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.userRepo.Update(userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

// UpdateAvatar 替换头像，上传后写回公开 URL
func (s *UserService) UpdateAvatar(userID int64, avatarPath string) (*dto.UserInfo, error) {
	return s.updateImage(userID, "avatars", "avatar", avatarPath)
}

// UpdateCoverImage 替换主页封面
func (s *UserService) UpdateCoverImage(userID int64, coverPath string) (*dto.UserInfo, error) {
	return s.updateImage(userID, "covers", "cover_image", coverPath)
}

func (s *UserService) updateImage(userID int64, prefix, column, path string) (*dto.UserInfo, error) {
	if path == "" {
		return nil, ErrAvatarRequired
	}

	url, err := uploadLocalImage(prefix, fmt.Sprintf("%d", userID), path)
	if err != nil {
		return nil, fmt.Errorf("上传图片失败: %w", err)
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{column: url})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

// ListWatchHistory 获取观察者的观看历史页，首次观看时间倒序
func (s *UserService) ListWatchHistory(viewerID int64, page *dto.PageQuery) (*dto.PageData, error) {
	page.Normalize()

	entries, total, err := s.userRepo.ListWatchHistory(viewerID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(entries))
	for i := range entries {
		items = append(items, *toVideoInfo(&entries[i].Video, true))
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}

// toUserInfo 将 model.User 转换为脱敏的 dto.UserInfo
func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}
}
