package repository

import (
	"playtube-go/internal/model"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(tweet *model.Tweet) error {
	return r.db.Create(tweet).Error
}

func (r *TweetRepository) GetByID(id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.db.First(&tweet, id).Error
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// UpdateContent 更新动态内容
func (r *TweetRepository) UpdateContent(id int64, content string) error {
	result := r.db.Model(&model.Tweet{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TweetRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Tweet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByOwner 获取用户的动态列表（含作者），最新在前
func (r *TweetRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Tweet, int64, error) {
	query := r.db.Model(&model.Tweet{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []model.Tweet
	err := query.
		Preload("Owner").
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&tweets).Error
	if err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}
