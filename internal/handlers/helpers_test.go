package handlers_test

import (
	"BlogAPI/internal/config"
	"BlogAPI/internal/handlers"
	"BlogAPI/internal/model"
	"BlogAPI/internal/repo"
	"BlogAPI/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks

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

// --- Helpers ---

type testRepos struct {
	users    *mockUserRepo
	posts    *mockPostRepo
	comments *mockCommentRepo
	tags     *mockTagRepo
}

func newTestRouter(t *testing.T) (http.Handler, *testRepos) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", RateLimitRPS: 1000, RateLimitBurst: 1000}
	logger := zap.NewNop().Sugar()

	mocks := &testRepos{
		users:    &mockUserRepo{},
		posts:    &mockPostRepo{},
		comments: &mockCommentRepo{},
		tags:     &mockTagRepo{},
	}

	userSvc := service.NewUserService(mocks.users, service.BcryptHasher{})
	postSvc := service.NewPostService(mocks.posts, mocks.users)
	commentSvc := service.NewCommentService(mocks.comments)
	tagSvc := service.NewTagService(mocks.tags)

	h := handlers.NewHandler(userSvc, postSvc, commentSvc, tagSvc, logger, cfg)
	return h.Router, mocks
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&m); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return m
}
