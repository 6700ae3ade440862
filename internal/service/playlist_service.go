package service

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound     = errors.New("播放列表不存在")
	ErrPlaylistNoPermission = errors.New("没有权限操作该播放列表")
	ErrVideoNotInPlaylist   = errors.New("视频不在该播放列表中")
)

type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	videoRepo    *repository.VideoRepository
	userRepo     *repository.UserRepository
}

func NewPlaylistService(
	playlistRepo *repository.PlaylistRepository,
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

// Create 创建播放列表
func (s *PlaylistService) Create(viewerID int64, req *dto.PlaylistCreateRequest) (*dto.PlaylistInfo, error) {
	playlist := &model.Playlist{
		OwnerID:     viewerID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}

	return toPlaylistInfo(playlist, nil, 0, 0), nil
}

// GetDetail 获取播放列表详情：作者信息、内嵌已发布视频、
// 视频总数与总播放量在读取时计算
func (s *PlaylistService) GetDetail(playlistID int64) (*dto.PlaylistDetail, error) {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	videos, err := s.playlistRepo.ListVideos(playlistID, true)
	if err != nil {
		return nil, err
	}

	var totalViews int64
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		totalViews += videos[i].ViewCount
		items = append(items, *toVideoInfo(&videos[i], true))
	}

	return &dto.PlaylistDetail{
		PlaylistInfo: *toPlaylistInfo(playlist, &playlist.Owner, int64(len(videos)), totalViews),
		Videos:       items,
	}, nil
}

// Update 更新播放列表（仅所有者）
func (s *PlaylistService) Update(playlistID, viewerID int64, req *dto.PlaylistUpdateRequest) (*dto.PlaylistInfo, error) {
	playlist, err := s.getOwned(playlistID, viewerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.playlistRepo.Update(playlistID, updates); err != nil {
		return nil, err
	}

	if req.Name != nil {
		playlist.Name = *req.Name
	}
	if req.Description != nil {
		playlist.Description = *req.Description
	}

	return toPlaylistInfo(playlist, nil, 0, 0), nil
}

// Delete 删除播放列表（仅所有者）
func (s *PlaylistService) Delete(playlistID, viewerID int64) error {
	if _, err := s.getOwned(playlistID, viewerID); err != nil {
		return err
	}
	return s.playlistRepo.Delete(playlistID)
}

// AddVideo 向播放列表添加视频（仅所有者），重复添加幂等
func (s *PlaylistService) AddVideo(playlistID, videoID, viewerID int64) error {
	if _, err := s.getOwned(playlistID, viewerID); err != nil {
		return err
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	return s.playlistRepo.AddVideo(playlistID, videoID)
}

// RemoveVideo 从播放列表移除视频（仅所有者）
func (s *PlaylistService) RemoveVideo(playlistID, videoID, viewerID int64) error {
	if _, err := s.getOwned(playlistID, viewerID); err != nil {
		return err
	}

	removed, err := s.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrVideoNotInPlaylist
	}
	return nil
}

// ListByOwner 获取用户的播放列表页，总数与总播放量随条目返回
func (s *PlaylistService) ListByOwner(ownerID int64, page *dto.PageQuery) (*dto.PageData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	page.Normalize()

	playlists, total, err := s.playlistRepo.ListByOwner(ownerID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		videos, err := s.playlistRepo.ListVideos(playlists[i].ID, true)
		if err != nil {
			return nil, err
		}

		var totalViews int64
		for j := range videos {
			totalViews += videos[j].ViewCount
		}

		items = append(items, *toPlaylistInfo(&playlists[i], nil, int64(len(videos)), totalViews))
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}

func (s *PlaylistService) getOwned(playlistID, viewerID int64) (*model.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	if err := assertOwner(playlist.OwnerID, viewerID, ErrPlaylistNoPermission); err != nil {
		return nil, err
	}

	return playlist, nil
}

// toPlaylistInfo 将 model.Playlist 转换为 dto.PlaylistInfo
func toPlaylistInfo(playlist *model.Playlist, owner *model.User, totalVideos, totalViews int64) *dto.PlaylistInfo {
	info := &dto.PlaylistInfo{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
		TotalVideos: totalVideos,
		TotalViews:  totalViews,
	}

	if owner != nil && owner.ID != 0 {
		info.Owner = toOwnerBrief(owner)
	}

	return info
}
