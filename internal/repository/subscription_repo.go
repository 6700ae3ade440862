package repository

import (
	"playtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle 翻转订阅关系，返回翻转后是否已订阅。
// 先删后插，唯一索引冲突时按"已订阅"处理
func (r *SubscriptionRepository) Toggle(subscriberID, channelID int64) (bool, error) {
	result := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	result = r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if result.Error != nil {
		return false, result.Error
	}
	return true, nil
}

// Exists 查询是否订阅了频道
func (r *SubscriptionRepository) Exists(subscriberID, channelID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountSubscribers 统计频道的订阅者数
func (r *SubscriptionRepository) CountSubscribers(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountSubscribedTo 统计用户订阅的频道数
func (r *SubscriptionRepository) CountSubscribedTo(subscriberID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

// ListSubscribers 获取频道的订阅者列表（含订阅者用户），最新订阅在前
func (r *SubscriptionRepository) ListSubscribers(channelID int64, skip, limit int) ([]model.Subscription, int64, error) {
	query := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.Subscription
	err := query.
		Preload("Subscriber").
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// ListSubscribedChannels 获取用户订阅的频道列表（含频道用户），最新订阅在前
func (r *SubscriptionRepository) ListSubscribedChannels(subscriberID int64, skip, limit int) ([]model.Subscription, int64, error) {
	query := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.Subscription
	err := query.
		Preload("Channel").
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}
