package service

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotAuthorized = errors.New("authentication required")
	ErrForbidden     = errors.New("code belongs to another user")
	ErrAliasTaken    = errors.New("custom code is already taken")
	ErrURLNotFound   = errors.New("url not found")
	ErrInvalidToken  = errors.New("invalid token")

	// ErrCreationUnavailable возвращается, когда код не может быть выдан:
	// диапазон исчерпан или хранилище счётчика недоступно
	ErrCreationUnavailable = errors.New("short code creation is temporarily unavailable")

	// ErrMaxRetriesExceeded возвращается когда не удалось получить свободный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")
)
