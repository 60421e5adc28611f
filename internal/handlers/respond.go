package handlers

import (
	"BlogAPI/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Envelope — единая форма JSON-ответа всех эндпоинтов.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// Фиксированная таблица: класс ошибки сервиса → HTTP-статус.
var statusByKind = map[service.ErrorKind]int{
	service.KindValidation: http.StatusBadRequest,
	service.KindConflict:   http.StatusBadRequest,
	service.KindAuth:       http.StatusUnauthorized,
	service.KindNotFound:   http.StatusNotFound,
	service.KindInternal:   http.StatusInternalServerError,
}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func respondMeta(w http.ResponseWriter, data, meta any) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Meta: meta})
}

// respondError маппит ошибку сервиса в статус и конверт.
// Внутренние сбои логируются с полной причиной, клиенту уходит общий текст.
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		svcErr = service.Internal("Internal server error", err)
	}
	if svcErr.Kind == service.KindInternal {
		logger.Errorw(svcErr.Message, "error", svcErr.Err)
	}
	writeJSON(w, statusByKind[svcErr.Kind], Envelope{Success: false, Error: svcErr.Message})
}
