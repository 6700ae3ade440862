package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"playtube-go/internal/model"
	"playtube-go/pkg/logger"

	"go.uber.org/zap"
)

// VideoDoc ES 视频文档结构
type VideoDoc struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"owner_id"`
	OwnerName   string  `json:"owner_name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsPublished bool    `json:"is_published"`
	ViewCount   int64   `json:"view_count"`
	Duration    float64 `json:"duration"`
	CreatedAt   string  `json:"created_at"`
}

func videoToDoc(v *model.Video) *VideoDoc {
	ownerName := ""
	if v.Owner.ID != 0 {
		ownerName = v.Owner.UserName
	}
	return &VideoDoc{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		OwnerName:   ownerName,
		Title:       v.Title,
		Description: v.Description,
		IsPublished: v.IsPublished,
		ViewCount:   v.ViewCount,
		Duration:    v.Duration,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

// SyncVideo 同步单个视频到 ES
func SyncVideo(ctx context.Context, v *model.Video) error {
	doc := videoToDoc(v)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, VideosIndexName(), fmt.Sprintf("%d", v.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", v.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频
func DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, VideosIndexName(), fmt.Sprintf("%d", videoID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}
