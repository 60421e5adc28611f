package repo

import (
	"BlogAPI/internal/model"
	"context"

	"gorm.io/gorm"
)

// TagRepository определяет контракт доступа к Tag для слоя сервиса.
// Все выборки ходят по внешнему идентификатору TagID (uuid),
// внутренний суррогатный ключ наружу не отдаётся.
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) (*model.Tag, error)

	// GetAll возвращает теги, отсортированные по имени.
	GetAll(ctx context.Context) ([]model.Tag, error)

	// FindByName ищет по подстроке имени без учёта регистра,
	// посты раскрыты, сортировка по имени.
	FindByName(ctx context.Context, fragment string) ([]model.Tag, error)

	GetByTagID(ctx context.Context, tagID string) (*model.Tag, error)

	Update(ctx context.Context, tagID, name string) (*model.Tag, error)

	Delete(ctx context.Context, tagID string) (*model.Tag, error)
}

type tagRepo struct {
	db *gorm.DB
}

// NewTagRepository создаёт реализацию репозитория для Tag.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *tagRepo) GetAll(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepo) FindByName(ctx context.Context, fragment string) ([]model.Tag, error) {
	var tags []model.Tag
	// lower(...) LIKE lower(...) работает одинаково в Postgres и SQLite
	err := r.db.WithContext(ctx).
		Preload("Posts").
		Where("lower(name) LIKE lower(?)", "%"+fragment+"%").
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepo) GetByTagID(ctx context.Context, tagID string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).Where("tag_id = ?", tagID).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepo) Update(ctx context.Context, tagID, name string) (*model.Tag, error) {
	tx := r.db.WithContext(ctx).Model(&model.Tag{}).Where("tag_id = ?", tagID).
		Update("name", name)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByTagID(ctx, tagID)
}

func (r *tagRepo) Delete(ctx context.Context, tagID string) (*model.Tag, error) {
	tag, err := r.GetByTagID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("tag_id = ?", tagID).Delete(&model.Tag{}).Error; err != nil {
		return nil, err
	}
	return tag, nil
}
