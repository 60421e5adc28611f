package handlers

import (
	"BlogAPI/internal/config"
	"BlogAPI/internal/middleware"
	"BlogAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает CRUD-запросы пользователей и логин.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewUserHandler(s *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: s, Logger: logger, Config: cfg}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateUserRequest — частичное обновление: отсутствующее поле не трогаем.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondData(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	user, err := h.Service.Create(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	user, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), service.UserUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "User deleted successfully", user)
}

// Login проверяет учётные данные и выписывает auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.Logger, service.Validation("Invalid request body"))
		return
	}
	user, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, h.Logger, err)
		return
	}
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		respondError(w, h.Logger, service.Internal("Failed to login", err))
		return
	}
	respondMessage(w, http.StatusOK, "Login successful", user)
}
