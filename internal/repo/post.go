package repo

import (
	"BlogAPI/internal/model"
	"context"

	"gorm.io/gorm"
)

// PostRepository определяет контракт доступа к Post для слоя сервиса.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)

	// GetAllExpanded возвращает посты вместе с автором, комментариями и тегами.
	GetAllExpanded(ctx context.Context) ([]model.Post, error)

	// FindByTitle ищет по подстроке заголовка (чувствительно к регистру),
	// автор раскрыт. Пустой фрагмент совпадает со всеми постами.
	FindByTitle(ctx context.Context, fragment string) ([]model.Post, error)

	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// Update возвращает gorm.ErrRecordNotFound, если записи нет.
	Update(ctx context.Context, id int64, title, description string) (*model.Post, error)

	// Delete возвращает удалённую запись либо gorm.ErrRecordNotFound.
	Delete(ctx context.Context, id int64) (*model.Post, error)
}

type postRepo struct {
	db *gorm.DB
}

// NewPostRepository создаёт реализацию репозитория для Post.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepo) GetAllExpanded(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Tags").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) FindByTitle(ctx context.Context, fragment string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("title LIKE ?", "%"+fragment+"%").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) Update(ctx context.Context, id int64, title, description string) (*model.Post, error) {
	tx := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Updates(map[string]any{"title": title, "description": description})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postRepo) Delete(ctx context.Context, id int64) (*model.Post, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Post{}, id).Error; err != nil {
		return nil, err
	}
	return post, nil
}
