package repository

import (
	"playtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUserName 根据用户名查询用户
func (r *UserRepository) GetByUserName(userName string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ?", userName).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIdentifier 根据用户名或邮箱查询用户（登录用）
func (r *UserRepository) GetByIdentifier(identifier string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUserNameOrEmail 检查用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUserNameOrEmail(userName, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("user_name = ? OR email = ?", userName, email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户字段
func (r *UserRepository) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// SetRefreshToken 持久化当前刷新令牌，token 为 nil 表示撤销
func (r *UserRepository) SetRefreshToken(id int64, token *string) error {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddWatchHistory 追加观看历史，已存在则忽略（集合语义，不重排）
func (r *UserRepository) AddWatchHistory(userID, videoID int64) error {
	entry := &model.WatchHistory{UserID: userID, VideoID: videoID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error
}

// ListWatchHistory 获取用户观看历史（含视频与作者），首次观看时间倒序
func (r *UserRepository) ListWatchHistory(userID int64, skip, limit int) ([]model.WatchHistory, int64, error) {
	query := r.db.Model(&model.WatchHistory{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.WatchHistory
	err := query.
		Preload("Video").Preload("Video.Owner").
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
