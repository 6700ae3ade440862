package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/config"
	infraKafka "playtube-go/internal/infra/kafka"
	infraRedis "playtube-go/internal/infra/redis"
	"playtube-go/internal/media"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"
	"playtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrVideoNoPermission = errors.New("没有权限操作该视频")
	ErrNoFieldsToUpdate  = errors.New("没有需要更新的字段")
	ErrVideoFileRequired = errors.New("视频文件不能为空")
)

// 匿名默认信息流页缓存的 TTL，列表不含观察者相关字段，可安全缓存
const feedCacheTTL = 30 * time.Second

type VideoService struct {
	videoRepo *repository.VideoRepository
	likeRepo  *repository.LikeRepository
	subRepo   *repository.SubscriptionRepository
	userRepo  *repository.UserRepository
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
	subRepo *repository.SubscriptionRepository,
	userRepo *repository.UserRepository,
) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		likeRepo:  likeRepo,
		subRepo:   subRepo,
		userRepo:  userRepo,
	}
}

// Publish 发布视频：探测时长、上传视频与封面、落库并通知索引同步
func (s *VideoService) Publish(ownerID int64, req *dto.VideoUploadRequest, videoPath, thumbPath string) (*dto.VideoInfo, error) {
	if videoPath == "" {
		return nil, ErrVideoFileRequired
	}

	duration, err := media.ProbeDuration(videoPath)
	if err != nil {
		logger.Warn("Probe video duration failed", zap.String("path", videoPath), zap.Error(err))
		duration = 0
	}

	now := time.Now().UnixNano()
	videoObject := fmt.Sprintf("videos/%d/%d%s", ownerID, now, filepath.Ext(videoPath))
	videoURL, err := uploadLocalFile(videoObject, videoPath, videoContentType(videoPath))
	if err != nil {
		return nil, fmt.Errorf("上传视频失败: %w", err)
	}

	thumbnailURL := ""
	if thumbPath != "" {
		thumbObject := fmt.Sprintf("thumbnails/%d/%d%s", ownerID, now, filepath.Ext(thumbPath))
		thumbnailURL, err = uploadLocalFile(thumbObject, thumbPath, imageContentType(thumbPath))
		if err != nil {
			return nil, fmt.Errorf("上传封面失败: %w", err)
		}
	}

	video := &model.Video{
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		IsPublished:  true,
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	logger.Info("Video published",
		zap.Int64("video_id", video.ID),
		zap.Int64("owner_id", ownerID),
		zap.Float64("duration", duration),
	)

	s.notifyVideoUpsert(video.ID)

	return toVideoInfo(video, false), nil
}

// GetDetail 获取视频详情：作者信息、点赞数、观察者点赞/订阅状态，
// 每次调用播放量加一，已登录观察者追加观看历史
func (s *VideoService) GetDetail(videoID, viewerID int64) (*dto.VideoDetail, error) {
	video, err := s.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	likesCount, err := s.likeRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	subscriberCount, err := s.subRepo.CountSubscribers(video.OwnerID)
	if err != nil {
		return nil, err
	}

	isLiked := false
	isSubscribed := false
	if viewerID != 0 {
		if isLiked, err = s.likeRepo.IsVideoLiked(viewerID, videoID); err != nil {
			return nil, err
		}
		if isSubscribed, err = s.subRepo.Exists(viewerID, video.OwnerID); err != nil {
			return nil, err
		}
	}

	if err := s.videoRepo.IncrementViewCount(videoID); err != nil {
		logger.Warn("Increment view count failed", zap.Int64("video_id", videoID), zap.Error(err))
	} else {
		video.ViewCount++
	}

	if viewerID != 0 {
		if err := s.userRepo.AddWatchHistory(viewerID, videoID); err != nil {
			logger.Warn("Append watch history failed",
				zap.Int64("user_id", viewerID), zap.Int64("video_id", videoID), zap.Error(err))
		}
	}

	return &dto.VideoDetail{
		VideoInfo:       *toVideoInfo(video, true),
		LikesCount:      likesCount,
		IsLiked:         isLiked,
		SubscriberCount: subscriberCount,
		IsSubscribed:    isSubscribed,
	}, nil
}

// List 获取已发布视频列表，支持标题/描述子串搜索、按作者过滤与排序
func (s *VideoService) List(query *dto.VideoListQuery, viewerID int64) (*dto.PageData, error) {
	query.Normalize()

	params := repository.VideoListParams{
		Skip:          query.Skip(),
		Limit:         query.Limit,
		PublishedOnly: true,
		SortBy:        query.SortBy,
		SortAsc:       query.SortType == "asc",
		WithOwner:     true,
	}
	if query.Query != "" {
		params.Search = &query.Query
	}
	if query.UserID != 0 {
		params.OwnerID = &query.UserID
	}

	cacheable := viewerID == 0 && query.Query == "" && query.UserID == 0 &&
		query.SortBy == "" && query.SortType == ""
	cacheKey := fmt.Sprintf("feed:page:%d:limit:%d", query.Page, query.Limit)

	if cacheable {
		var cached dto.PageData
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		hit, err := infraRedis.GetJSON(ctx, cacheKey, &cached)
		cancel()
		if err != nil {
			logger.Warn("Read feed cache failed", zap.String("key", cacheKey), zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	videos, total, err := s.videoRepo.List(params)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], true))
	}

	page := dto.NewPageData(items, total, query.Page, query.Limit)

	if cacheable {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := infraRedis.SetJSON(ctx, cacheKey, page, feedCacheTTL); err != nil {
			logger.Warn("Write feed cache failed", zap.String("key", cacheKey), zap.Error(err))
		}
		cancel()
	}

	return page, nil
}

// Update 更新视频元数据（仅所有者），可同时替换封面
func (s *VideoService) Update(videoID, viewerID int64, req *dto.VideoUpdateRequest, thumbPath string) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := assertOwner(video.OwnerID, viewerID, ErrVideoNoPermission); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if thumbPath != "" {
		thumbObject := fmt.Sprintf("thumbnails/%d/%d%s", video.OwnerID, time.Now().UnixNano(), filepath.Ext(thumbPath))
		thumbnailURL, err := uploadLocalFile(thumbObject, thumbPath, imageContentType(thumbPath))
		if err != nil {
			return nil, fmt.Errorf("上传封面失败: %w", err)
		}
		updates["thumbnail_url"] = thumbnailURL
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	updated, err := s.videoRepo.Update(videoID, updates)
	if err != nil {
		return nil, err
	}

	s.notifyVideoUpsert(videoID)

	return toVideoInfo(updated, false), nil
}

// Delete 删除视频（仅所有者）并通知索引移除
func (s *VideoService) Delete(videoID, viewerID int64) error {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if err := assertOwner(video.OwnerID, viewerID, ErrVideoNoPermission); err != nil {
		return err
	}

	if err := s.videoRepo.Delete(videoID); err != nil {
		return err
	}

	logger.Info("Video deleted", zap.Int64("video_id", videoID), zap.Int64("owner_id", viewerID))

	s.notifyVideoDelete(videoID)

	return nil
}

// TogglePublish 切换发布状态（仅所有者），返回切换后的状态。
// 取消发布等同于从搜索索引移除
func (s *VideoService) TogglePublish(videoID, viewerID int64) (bool, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrVideoNotFound
		}
		return false, err
	}

	if err := assertOwner(video.OwnerID, viewerID, ErrVideoNoPermission); err != nil {
		return false, err
	}

	published, err := s.videoRepo.TogglePublished(videoID)
	if err != nil {
		return false, err
	}

	if published {
		s.notifyVideoUpsert(videoID)
	} else {
		s.notifyVideoDelete(videoID)
	}

	return published, nil
}

func (s *VideoService) notifyVideoUpsert(videoID int64) {
	s.sendVideoEvent(&infraKafka.VideoEvent{Type: infraKafka.VideoEventUpsert, VideoID: videoID})
}

func (s *VideoService) notifyVideoDelete(videoID int64) {
	s.sendVideoEvent(&infraKafka.VideoEvent{Type: infraKafka.VideoEventDelete, VideoID: videoID})
}

// sendVideoEvent 投递视频变更事件，失败只记日志不影响主流程
func (s *VideoService) sendVideoEvent(event *infraKafka.VideoEvent) {
	topic := config.GetKafka().Topics["video_events"]
	if topic == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := infraKafka.SendVideoEvent(ctx, topic, event); err != nil {
		logger.Error("Send video event failed",
			zap.String("type", event.Type), zap.Int64("video_id", event.VideoID), zap.Error(err))
	}
}

// toVideoInfo 将 model.Video 转换为 dto.VideoInfo
func toVideoInfo(video *model.Video, includeOwner bool) *dto.VideoInfo {
	info := &dto.VideoInfo{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		ViewCount:    video.ViewCount,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}

	if includeOwner && video.Owner.ID != 0 {
		info.Owner = toOwnerBrief(&video.Owner)
	}

	return info
}

// toOwnerBrief 提取作者简要信息
func toOwnerBrief(user *model.User) *dto.OwnerBrief {
	return &dto.OwnerBrief{
		ID:       user.ID,
		UserName: user.UserName,
		FullName: user.FullName,
		Avatar:   user.Avatar,
	}
}
