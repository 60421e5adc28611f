package handlers

import (
	"BlogAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TagHandler обрабатывает CRUD-запросы тегов. Во всех маршрутах {id} —
// это внешний TagID (uuid), а не внутренний ключ.
type TagHandler struct {
	Service *service.TagService
	Logger  *zap.SugaredLogger
}

func NewTagHandler(s *service.TagService, logger *zap.SugaredLogger) *TagHandler {
	return &TagHandler{Service: s, Logger: logger}
}

type tagRequest struct {
	Name string `json:"name"`
}

func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	tag, err := h.Service.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusCreated, "Tag created successfully", tag)
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, tags)
}

// ListByName фильтрует теги по подстроке имени из query-параметра.
func (h *TagHandler) ListByName(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Service.ListByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, tags)
}

func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	tag, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, tag)
}

func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	tag, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Tag updated successfully", tag)
}

func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tag, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Tag deleted successfully", tag)
}
