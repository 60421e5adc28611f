package service

import (
	"BlogAPI/internal/model"
	"BlogAPI/internal/repo"
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultCommentPage  = 1
	defaultCommentLimit = 10
	maxCommentLimit     = 100
)

// CommentMeta — метаданные пагинации списка комментариев.
type CommentMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// CommentService инкапсулирует бизнес-логику работы с комментариями.
type CommentService struct {
	repo repo.CommentRepository
}

func NewCommentService(r repo.CommentRepository) *CommentService {
	return &CommentService{repo: r}
}

// Create проверяет текст и оба внешних ключа до обращения к хранилищу.
// Текст сохраняется без окружающих пробелов; идентификатор — свежий uuid.
func (s *CommentService) Create(ctx context.Context, text, rawPostID, rawUserID string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, Validation("Comment text is required")
	}
	postID, verr := parseID(rawPostID, "Valid postId is required")
	if verr != nil {
		return nil, verr
	}
	userID, verr := parseID(rawUserID, "Valid userId is required")
	if verr != nil {
		return nil, verr
	}

	comment, err := s.repo.Create(ctx, &model.Comment{
		ID:      uuid.NewString(),
		Comment: text,
		PostID:  postID,
		UserID:  userID,
	})
	if err != nil {
		return nil, Internal("Failed to create comment", err)
	}
	return comment, nil
}

// List возвращает страницу комментариев (новые первыми) и метаданные.
// Нечисловые page/limit заменяются значениями по умолчанию,
// limit ограничен сверху maxCommentLimit.
func (s *CommentService) List(ctx context.Context, rawPage, rawLimit string) ([]model.Comment, *CommentMeta, error) {
	page := defaultCommentPage
	if p, err := strconv.Atoi(rawPage); err == nil && p > 0 {
		page = p
	}
	limit := defaultCommentLimit
	if l, err := strconv.Atoi(rawLimit); err == nil && l > 0 {
		limit = l
	}
	if limit > maxCommentLimit {
		limit = maxCommentLimit
	}

	comments, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, Internal("Failed to retrieve comments", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return comments, &CommentMeta{Total: total, Page: page, Pages: pages, Limit: limit}, nil
}

// ListForPost возвращает все комментарии поста.
func (s *CommentService) ListForPost(ctx context.Context, rawPostID string) ([]model.Comment, error) {
	postID, verr := parseID(rawPostID, "Invalid post ID")
	if verr != nil {
		return nil, verr
	}
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, Internal("Failed to retrieve comments of post", err)
	}
	return comments, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Comment not found")
	}
	if err != nil {
		return nil, Internal("Failed to retrieve comment", err)
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, id, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, Validation("Comment text is required")
	}
	comment, err := s.repo.Update(ctx, id, text)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Comment not found")
	}
	if err != nil {
		return nil, Internal("Failed to update comment", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Comment not found")
	}
	if err != nil {
		return Internal("Failed to delete comment", err)
	}
	return nil
}
