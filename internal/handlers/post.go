package handlers

import (
	"BlogAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PostHandler обрабатывает CRUD-запросы постов.
type PostHandler struct {
	Service *service.PostService
	Logger  *zap.SugaredLogger
}

func NewPostHandler(s *service.PostService, logger *zap.SugaredLogger) *PostHandler {
	return &PostHandler{Service: s, Logger: logger}
}

type createPostRequest struct {
	UserID      idParam `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

type updatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	post, err := h.Service.Create(r.Context(), req.UserID.String(), req.Title, req.Description)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusCreated, "Post created successfully", post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, posts)
}

// ListByTitle фильтрует посты по подстроке заголовка из query-параметра.
func (h *PostHandler) ListByTitle(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.ListByTitle(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Post fetched successfully", post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	post, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), req.Title, req.Description)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Post updated successfully", post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	post, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Post deleted successfully", post)
}
