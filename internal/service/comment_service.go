package service

import (
	"errors"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/model"
	"playtube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentNoPermission = errors.New("没有权限操作该评论")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
	}
}

// Create 发表评论，目标视频必须存在
func (s *CommentService) Create(videoID, viewerID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Content: req.Content,
		VideoID: videoID,
		OwnerID: viewerID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return toCommentInfo(comment, nil), nil
}

// Update 修改评论内容（仅所有者）
func (s *CommentService) Update(commentID, viewerID int64, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := assertOwner(comment.OwnerID, viewerID, ErrCommentNoPermission); err != nil {
		return nil, err
	}

	if err := s.commentRepo.UpdateContent(commentID, req.Content); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	return toCommentInfo(comment, nil), nil
}

// Delete 删除评论（仅所有者）
func (s *CommentService) Delete(commentID, viewerID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := assertOwner(comment.OwnerID, viewerID, ErrCommentNoPermission); err != nil {
		return err
	}

	return s.commentRepo.Delete(commentID)
}

// ListByVideo 获取视频评论页：评论者信息、点赞数、观察者点赞状态
func (s *CommentService) ListByVideo(videoID, viewerID int64, page *dto.PageQuery) (*dto.PageData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	page.Normalize()

	comments, total, err := s.commentRepo.ListByVideo(videoID, page.Skip(), page.Limit)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]int64, 0, len(comments))
	for i := range comments {
		commentIDs = append(commentIDs, comments[i].ID)
	}

	likeCounts, err := s.likeRepo.CountByComments(commentIDs)
	if err != nil {
		return nil, err
	}

	likedSet := make(map[int64]bool)
	if viewerID != 0 {
		likedSet, err = s.likeRepo.BatchCheckCommentLiked(viewerID, commentIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		info := toCommentInfo(c, &c.Owner)
		info.LikesCount = likeCounts[c.ID]
		info.IsLiked = likedSet[c.ID]
		items = append(items, *info)
	}

	return dto.NewPageData(items, total, page.Page, page.Limit), nil
}

// toCommentInfo 将 model.Comment 转换为 dto.CommentInfo
func toCommentInfo(comment *model.Comment, owner *model.User) *dto.CommentInfo {
	info := &dto.CommentInfo{
		ID:        comment.ID,
		Content:   comment.Content,
		VideoID:   comment.VideoID,
		OwnerID:   comment.OwnerID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	if owner != nil && owner.ID != 0 {
		info.Owner = toOwnerBrief(owner)
	}

	return info
}
