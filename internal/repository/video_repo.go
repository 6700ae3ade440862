package repository

import (
	"strings"

	"playtube-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// VideoListParams 视频列表查询参数
type VideoListParams struct {
	Skip          int
	Limit         int
	OwnerID       *int64
	Search        *string // 标题或描述的大小写不敏感子串匹配
	PublishedOnly bool
	SortBy        string // created_at / view_count / duration / title
	SortAsc       bool
	WithOwner     bool
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含作者信息）
func (r *VideoRepository) GetByIDWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Update 更新视频字段
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除视频
func (r *VideoRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List 视频列表查询（筛选、排序、分页）
func (r *VideoRepository) List(params VideoListParams) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{})

	if params.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if params.OwnerID != nil {
		query = query.Where("owner_id = ?", *params.OwnerID)
	}
	if params.Search != nil && *params.Search != "" {
		pattern := "%" + strings.ToLower(*params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	direction := "DESC"
	if params.SortAsc {
		direction = "ASC"
	}
	// id 兜底，保证同值时分页顺序稳定
	order := sortBy + " " + direction + ", id " + direction

	findQuery := query.Order(order).Offset(params.Skip).Limit(params.Limit)
	if params.WithOwner {
		findQuery = findQuery.Preload("Owner")
	}

	var videos []model.Video
	if err := findQuery.Find(&videos).Error; err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// GetByIDs 批量查询视频（含作者信息）
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// IncrementViewCount 播放量 +1
func (r *VideoRepository) IncrementViewCount(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// TogglePublished 翻转发布状态（单条件写），返回翻转后的状态
func (r *VideoRepository) TogglePublished(id int64) (bool, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("is_published", gorm.Expr("NOT is_published"))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, gorm.ErrRecordNotFound
	}

	video, err := r.GetByID(id)
	if err != nil {
		return false, err
	}
	return video.IsPublished, nil
}
