package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"playtube-go/internal/api/dto"
	infraES "playtube-go/internal/infra/elasticsearch"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"
	"playtube-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	videoRepo *repository.VideoRepository
}

func NewSearchService(videoRepo *repository.VideoRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo}
}

// SearchVideos 搜索已发布视频，ES 优先，失败则降级到 DB 子串匹配
func (s *SearchService) SearchVideos(req *dto.SearchVideoRequest) (*dto.PageData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 10
	}

	data, err := s.searchFromES(req)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.String("q", req.Q), zap.Error(err))
		return s.searchFromDB(req)
	}
	return data, nil
}

func (s *SearchService) searchFromES(req *dto.SearchVideoRequest) (*dto.PageData, error) {
	query := map[string]interface{}{
		"from": (req.Page - 1) * req.Limit,
		"size": req.Limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  req.Q,
						"fields": []string{"title^2", "description", "owner_name"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"is_published": true},
				},
			},
		},
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.VideosIndexName(), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}

	videos, err := s.videoRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	// 按 ES 相关度顺序重排 DB 结果
	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	items := make([]dto.VideoInfo, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok && v.IsPublished {
			items = append(items, *toVideoInfo(v, true))
		}
	}

	return dto.NewPageData(items, esResp.Hits.Total.Value, req.Page, req.Limit), nil
}

func (s *SearchService) searchFromDB(req *dto.SearchVideoRequest) (*dto.PageData, error) {
	params := repository.VideoListParams{
		Skip:          (req.Page - 1) * req.Limit,
		Limit:         req.Limit,
		Search:        &req.Q,
		PublishedOnly: true,
		WithOwner:     true,
	}

	videos, total, err := s.videoRepo.List(params)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], true))
	}

	return dto.NewPageData(items, total, req.Page, req.Limit), nil
}
