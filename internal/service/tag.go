package service

import (
	"BlogAPI/internal/model"
	"BlogAPI/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagService инкапсулирует бизнес-логику работы с тегами.
// Наружу всегда отдаётся сгенерированный TagID, не автоинкремент БД.
type TagService struct {
	repo repo.TagRepository
}

func NewTagService(r repo.TagRepository) *TagService {
	return &TagService{repo: r}
}

// Create присваивает тегу свежий uuid; повторное создание с тем же именем
// даёт другой TagID.
func (s *TagService) Create(ctx context.Context, name string) (*model.Tag, error) {
	tag, err := s.repo.Create(ctx, &model.Tag{TagID: uuid.NewString(), Name: name})
	if err != nil {
		return nil, Internal("Failed to create tag", err)
	}
	return tag, nil
}

// List возвращает все теги, отсортированные по имени.
func (s *TagService) List(ctx context.Context) ([]model.Tag, error) {
	tags, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, Internal("Failed to get tags", err)
	}
	return tags, nil
}

// ListByName ищет теги по подстроке имени без учёта регистра,
// связанные посты раскрыты.
func (s *TagService) ListByName(ctx context.Context, fragment string) ([]model.Tag, error) {
	tags, err := s.repo.FindByName(ctx, fragment)
	if err != nil {
		return nil, Internal("Failed to get tags", err)
	}
	return tags, nil
}

func (s *TagService) Get(ctx context.Context, tagID string) (*model.Tag, error) {
	tag, err := s.repo.GetByTagID(ctx, tagID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Tag not found")
	}
	if err != nil {
		return nil, Internal("Failed to get tag", err)
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, tagID, name string) (*model.Tag, error) {
	tag, err := s.repo.Update(ctx, tagID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Tag not found")
	}
	if err != nil {
		return nil, Internal("Failed to update tag", err)
	}
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, tagID string) (*model.Tag, error) {
	tag, err := s.repo.Delete(ctx, tagID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Tag not found")
	}
	if err != nil {
		return nil, Internal("Failed to delete tag", err)
	}
	return tag, nil
}
