package service

import (
	"BlogAPI/internal/model"
	"BlogAPI/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PostService инкапсулирует бизнес-логику работы с постами.
type PostService struct {
	posts repo.PostRepository
	users repo.UserRepository
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create создаёт пост от имени существующего пользователя.
// FK-ограничение в БД остаётся авторитетной защитой, предварительная
// проверка даёт клиенту внятный 404 вместо сырой ошибки хранилища.
func (s *PostService) Create(ctx context.Context, rawUserID, title, description string) (*model.Post, error) {
	userID, verr := parseID(rawUserID, "Invalid user ID")
	if verr != nil {
		return nil, verr
	}

	_, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("User not found")
	}
	if err != nil {
		return nil, Internal("Failed to create post", err)
	}

	post, err := s.posts.Create(ctx, &model.Post{UserID: userID, Title: title, Description: description})
	if err != nil {
		return nil, Internal("Failed to create post", err)
	}
	return post, nil
}

// List возвращает все посты с раскрытыми автором, комментариями и тегами.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.GetAllExpanded(ctx)
	if err != nil {
		return nil, Internal("Failed to get posts", err)
	}
	return posts, nil
}

// ListByTitle ищет посты по подстроке заголовка (с учётом регистра).
func (s *PostService) ListByTitle(ctx context.Context, fragment string) ([]model.Post, error) {
	posts, err := s.posts.FindByTitle(ctx, fragment)
	if err != nil {
		return nil, Internal("Failed to get posts", err)
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, rawID string) (*model.Post, error) {
	id, verr := parseID(rawID, "Invalid post ID")
	if verr != nil {
		return nil, verr
	}
	post, err := s.posts.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Post not found")
	}
	if err != nil {
		return nil, Internal("Failed to get post", err)
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, rawID, title, description string) (*model.Post, error) {
	id, verr := parseID(rawID, "Invalid post ID")
	if verr != nil {
		return nil, verr
	}
	post, err := s.posts.Update(ctx, id, title, description)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Post not found")
	}
	if err != nil {
		return nil, Internal("Failed to update post", err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, rawID string) (*model.Post, error) {
	id, verr := parseID(rawID, "Invalid post ID")
	if verr != nil {
		return nil, verr
	}
	post, err := s.posts.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Post not found")
	}
	if err != nil {
		return nil, Internal("Failed to delete post", err)
	}
	return post, nil
}
