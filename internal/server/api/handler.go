// Package api реализует HTTP-слой сервера.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (валидация и хранилища);
//   - Log: логгер для записи сбоев.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler. log может быть nil.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON пишет статус и тело в JSON.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError маппит ошибку сервиса на статус.
// Всё, что не ErrInvalidInput и не ErrNotFound, логируется и отдаётся как 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, err)
	default:
		h.Log.Sugar().Errorw(
			op+" failed",
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}

// decodeBody читает JSON тело в dst. Пустое тело считается пустым объектом.
// Битый JSON не валидационная ошибка: логируем и отвечаем 500.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	h.Log.Sugar().Errorw(
		op+" failed",
		"error", errors.Join(serr.ErrBadJSON, err),
		"request_id", middleware.RequestIDFromContext(r.Context()),
	)
	WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	return false
}

// parseID разбирает {id} из пути по правилам parseInt:
// пробелы в начале, знак, затем ведущие цифры ("12abc" -> 12).
// Если цифр нет, возвращается 0 — такого id не бывает, поиск даст 404.
func parseID(r *http.Request) int {
	s := strings.TrimLeft(chi.URLParam(r, "id"), " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return id
}
