package repo

import (
	"BlogAPI/internal/model"
	"context"

	"gorm.io/gorm"
)

// CommentRepository определяет контракт доступа к Comment для слоя сервиса.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// List возвращает страницу комментариев (createdAt по убыванию)
	// и общее число записей одним вызовом.
	List(ctx context.Context, offset, limit int) ([]model.Comment, int64, error)

	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если комментария нет.
	GetByID(ctx context.Context, id string) (*model.Comment, error)

	// Update возвращает gorm.ErrRecordNotFound, если записи нет.
	Update(ctx context.Context, id string, text string) (*model.Comment, error)

	// Delete возвращает gorm.ErrRecordNotFound, если записи не было.
	Delete(ctx context.Context, id string) error
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepository создаёт реализацию репозитория для Comment.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepo) List(ctx context.Context, offset, limit int) ([]model.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) Update(ctx context.Context, id string, text string) (*model.Comment, error) {
	tx := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).
		Update("comment", text)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
