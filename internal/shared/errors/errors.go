// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (не переданы обязательные поля и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Превышен лимит запросов
	ErrTooManyRequests = errors.New("too many requests")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
)

// APIError — ошибка с текстом, который уходит клиенту как есть.
//
// Kind указывает категорию (ErrInvalidInput, ErrNotFound),
// по ней api слой выбирает HTTP-статус через errors.Is.
type APIError struct {
	Kind    error
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// NewValidation создаёт ошибку валидации (400).
func NewValidation(msg string) *APIError {
	return &APIError{Kind: ErrInvalidInput, Message: msg}
}

// NewNotFound создаёт ошибку отсутствия ресурса (404).
func NewNotFound(msg string) *APIError {
	return &APIError{Kind: ErrNotFound, Message: msg}
}

// пользователи
var (
	ErrUserFieldsRequired = NewValidation("Name and email are required")
	ErrUserNoUpdateFields = NewValidation("At least one field (name or email) must be provided")
	ErrUserNotFound       = NewNotFound("User not found")
)

// товары
var (
	ErrItemFieldsRequired = NewValidation("Name, description, and price are required")
	ErrItemNoUpdateFields = NewValidation("At least one field must be provided for update")
	ErrItemNotFound       = NewNotFound("Item not found")
)
