package repo

import (
	"BlogAPI/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если пользователя нет.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByEmail возвращает gorm.ErrRecordNotFound, если email не зарегистрирован.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Update перезаписывает запись целиком (Save по первичному ключу).
	Update(ctx context.Context, user *model.User) (*model.User, error)

	// Delete возвращает удалённую запись.
	Delete(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.User{}, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
