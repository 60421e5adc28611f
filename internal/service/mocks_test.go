package service

import (
	"BlogAPI/internal/model"
	"BlogAPI/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// моки репозиториев для тестов сервисов

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockPostRepo struct{ mock.Mock }

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := m.Called(ctx, post)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) GetAllExpanded(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) FindByTitle(ctx context.Context, fragment string) ([]model.Post, error) {
	args := m.Called(ctx, fragment)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, id int64, title, description string) (*model.Post, error) {
	args := m.Called(ctx, id, title, description)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PostRepository = (*mockPostRepo)(nil)

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) List(ctx context.Context, offset, limit int) ([]model.Comment, int64, error) {
	args := m.Called(ctx, offset, limit)
	var comments []model.Comment
	if v, ok := args.Get(0).([]model.Comment); ok {
		comments = v
	}
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if v, ok := args.Get(0).([]model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, id string, text string) (*model.Comment, error) {
	args := m.Called(ctx, id, text)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CommentRepository = (*mockCommentRepo)(nil)

type mockTagRepo struct{ mock.Mock }

func (m *mockTagRepo) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	args := m.Called(ctx, tag)
	if tg, ok := args.Get(0).(*model.Tag); ok {
		return tg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) GetAll(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Tag); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) FindByName(ctx context.Context, fragment string) ([]model.Tag, error) {
	args := m.Called(ctx, fragment)
	if v, ok := args.Get(0).([]model.Tag); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) GetByTagID(ctx context.Context, tagID string) (*model.Tag, error) {
	args := m.Called(ctx, tagID)
	if tg, ok := args.Get(0).(*model.Tag); ok {
		return tg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) Update(ctx context.Context, tagID, name string) (*model.Tag, error) {
	args := m.Called(ctx, tagID, name)
	if tg, ok := args.Get(0).(*model.Tag); ok {
		return tg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) Delete(ctx context.Context, tagID string) (*model.Tag, error) {
	args := m.Called(ctx, tagID)
	if tg, ok := args.Get(0).(*model.Tag); ok {
		return tg, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.TagRepository = (*mockTagRepo)(nil)

// assertKind проверяет класс ошибки сервиса.
func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var svcErr *Error
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, kind, svcErr.Kind)
	}
}
