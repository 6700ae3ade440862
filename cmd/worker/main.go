package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playtube-go/internal/config"
	"playtube-go/internal/infra/database"
	infraES "playtube-go/internal/infra/elasticsearch"
	infraKafka "playtube-go/internal/infra/kafka"
	"playtube-go/internal/repository"
	"playtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 索引同步 worker：消费视频变更事件，将已发布视频写入搜索索引，
// 删除或取消发布的视频从索引移除
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	videoRepo := repository.NewVideoRepository(database.Get())

	topic := cfg.Kafka.Topics["video_events"]
	groupID := "playtube-index-worker"

	logger.Info("Index sync worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID,
		func(event *infraKafka.VideoEvent) error {
			return handleVideoEvent(videoRepo, event)
		})
}

func handleVideoEvent(videoRepo *repository.VideoRepository, event *infraKafka.VideoEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if event.Type == infraKafka.VideoEventDelete {
		return infraES.DeleteVideo(ctx, event.VideoID)
	}

	video, err := videoRepo.GetByIDWithOwner(event.VideoID)
	if err != nil {
		// 事件处理时视频可能已被删除，转为索引移除
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return infraES.DeleteVideo(ctx, event.VideoID)
		}
		return err
	}

	if !video.IsPublished {
		return infraES.DeleteVideo(ctx, video.ID)
	}

	return infraES.SyncVideo(ctx, video)
}
