package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInsightUnavailable = errors.New("insight service is not configured")

	// ErrInvalidCredentials возвращается и при неизвестном username, и при неверном пароле.
	// Случаи намеренно не различаются, чтобы не раскрывать существование аккаунта.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UpstreamError оборачивает любую ошибку внешнего генератора инсайтов, включая
// пустой ответ модели.
type UpstreamError struct {
	Err error
}

func NewUpstreamError(err error) error {
	return &UpstreamError{Err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("insight provider: %s", e.Err.Error())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
