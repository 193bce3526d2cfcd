package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind классифицирует ошибку для HTTP-границы
type Kind string

const (
	KindInvalidRequest Kind = "INVALID_REQUEST"
	KindNotFound       Kind = "NOT_FOUND"
	KindAlreadyExists  Kind = "ALREADY_EXISTS"
	KindInvalidFormat  Kind = "INVALID_FORMAT"
	KindConflict       Kind = "CONFLICT"
	KindForbidden      Kind = "FORBIDDEN"
	KindInternal       Kind = "INTERNAL"
)

type AppError struct {
	Code       string `json:"code"`
	Kind       Kind   `json:"-"`
	Message    string `json:"detail"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, kind Kind, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

// As извлекает AppError из цепочки обёрнутых ошибок
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is сообщает, относится ли ошибка к указанному виду
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// IsNotFound используется create-эндпоинтами для проверки существования по естественному ключу
func IsNotFound(err error) bool {
	return Is(err, KindNotFound)
}
