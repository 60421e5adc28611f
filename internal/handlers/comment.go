package handlers

import (
	"BlogAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CommentHandler обрабатывает CRUD-запросы комментариев.
type CommentHandler struct {
	Service *service.CommentService
	Logger  *zap.SugaredLogger
}

func NewCommentHandler(s *service.CommentService, logger *zap.SugaredLogger) *CommentHandler {
	return &CommentHandler{Service: s, Logger: logger}
}

type createCommentRequest struct {
	Comment string  `json:"comment"`
	PostID  idParam `json:"postId"`
	UserID  idParam `json:"userId"`
}

type updateCommentRequest struct {
	Comment string `json:"comment"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	comment, err := h.Service.Create(r.Context(), req.Comment, req.PostID.String(), req.UserID.String())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusCreated, "Comment created successfully", comment)
}

// List отдаёт страницу комментариев с метаданными пагинации.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	comments, meta, err := h.Service.List(r.Context(), q.Get("page"), q.Get("limit"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMeta(w, comments, meta)
}

func (h *CommentHandler) ListForPost(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Service.ListForPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, comments)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	comment, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	comment, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), req.Comment)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Comment updated successfully", comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Comment deleted successfully"})
}
