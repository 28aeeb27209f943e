package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("entry not found")
	ErrAlreadyExists = errors.New("code already exists")
	ErrNotAuthorized = errors.New("not authorized")

	// ErrExpired оборачивает ErrNotFound: истёкшая запись для клиента не отличается от отсутствующей
	ErrExpired = fmt.Errorf("entry expired: %w", ErrNotFound)
)

// ConflictError сообщает, какой именно код нарушил уникальность
type ConflictError struct {
	Code Code
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("code %s: %s", e.Code, ErrAlreadyExists)
}

func (e *ConflictError) Unwrap() error {
	return ErrAlreadyExists
}

// NewConflictError создает ошибку конфликта для кода
func NewConflictError(code Code) error {
	return &ConflictError{Code: code}
}
