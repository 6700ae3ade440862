package repository

import (
	"playtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(playlist *model.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *PlaylistRepository) GetByID(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.Preload("Owner").First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Update(id int64, updates map[string]interface{}) error {
	result := r.db.Model(&model.Playlist{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除播放列表及其成员记录
func (r *PlaylistRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Playlist{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListByOwner 获取用户的播放列表，最新在前
func (r *PlaylistRepository) ListByOwner(ownerID int64, skip, limit int) ([]model.Playlist, int64, error) {
	query := r.db.Model(&model.Playlist{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlists []model.Playlist
	err := query.
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&playlists).Error
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

// AddVideo 向播放列表添加视频，已存在时静默幂等
func (r *PlaylistRepository) AddVideo(playlistID, videoID int64) error {
	pv := &model.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(pv).Error
}

// RemoveVideo 从播放列表移除视频，返回是否实际移除
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID int64) (bool, error) {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListVideos 获取播放列表内的视频（含作者），按加入顺序排列。
// publishedOnly 为 true 时只返回已发布视频
func (r *PlaylistRepository) ListVideos(playlistID int64, publishedOnly bool) ([]model.Video, error) {
	query := r.db.Model(&model.Video{}).
		Joins("INNER JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID)
	if publishedOnly {
		query = query.Where("videos.is_published = ?", true)
	}

	var videos []model.Video
	err := query.
		Preload("Owner").
		Order("playlist_videos.created_at ASC, playlist_videos.id ASC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
