package service

import (
	"BlogAPI/internal/model"
	"BlogAPI/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserService инкапсулирует бизнес-логику работы с пользователями:
// валидация входа, уникальность email, хеширование пароля,
// зачистка дайджеста из ответов.
type UserService struct {
	repo   repo.UserRepository
	hasher SecretHasher
}

func NewUserService(r repo.UserRepository, h SecretHasher) *UserService {
	return &UserService{repo: r, hasher: h}
}

// UserUpdateInput — частичное обновление: nil-поле означает
// «оставить как есть», пустой пароль — «не менять дайджест».
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// sanitize убирает дайджест пароля из проекции.
// Поле и так помечено json:"-", но наружу сервис отдаёт уже пустое значение.
func sanitize(u *model.User) *model.User {
	u.Password = ""
	return u
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, Internal("Failed to get users", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, rawID string) (*model.User, error) {
	id, verr := parseID(rawID, "Invalid user ID")
	if verr != nil {
		return nil, verr
	}
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("User not found")
	}
	if err != nil {
		return nil, Internal("Failed to get user", err)
	}
	return sanitize(user), nil
}

func (s *UserService) Create(ctx context.Context, name, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, Validation("Email and password are required")
	}

	// Предварительная проверка — быстрый путь; гонку двух одновременных
	// регистраций закрывает unique-индекс на email.
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, Conflict("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Internal("Failed to create user", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, Internal("Failed to create user", err)
	}

	user, err := s.repo.Create(ctx, &model.User{Name: name, Email: email, Password: digest})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, Conflict("User already exists")
	}
	if err != nil {
		return nil, Internal("Failed to create user", err)
	}
	return sanitize(user), nil
}

func (s *UserService) Update(ctx context.Context, rawID string, in UserUpdateInput) (*model.User, error) {
	id, verr := parseID(rawID, "Invalid user ID")
	if verr != nil {
		return nil, verr
	}

	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("User not found")
	}
	if err != nil {
		return nil, Internal("Failed to update user", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		digest, herr := s.hasher.Hash(*in.Password)
		if herr != nil {
			return nil, Internal("Failed to update user", herr)
		}
		user.Password = digest
	}

	updated, err := s.repo.Update(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, Conflict("User already exists")
	}
	if err != nil {
		return nil, Internal("Failed to update user", err)
	}
	return sanitize(updated), nil
}

func (s *UserService) Delete(ctx context.Context, rawID string) (*model.User, error) {
	id, verr := parseID(rawID, "Invalid user ID")
	if verr != nil {
		return nil, verr
	}
	user, err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("User not found")
	}
	if err != nil {
		return nil, Internal("Failed to delete user", err)
	}
	return sanitize(user), nil
}

// Login проверяет учётные данные. Ответ одинаков для неизвестного email
// и неверного пароля.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, Validation("Email and password are required")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Auth("Invalid email or password")
	}
	if err != nil {
		return nil, Internal("Failed to login", err)
	}
	if !s.hasher.Verify(password, user.Password) {
		return nil, Auth("Invalid email or password")
	}
	return sanitize(user), nil
}
