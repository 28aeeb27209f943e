package usecase

import (
	"fmt"

	"github.com/avc-dev/shortlink/internal/service"
)

var (
	ErrEmptyURL      = fmt.Errorf("%w: empty URL", service.ErrInvalidInput)
	ErrInvalidExpiry = fmt.Errorf("%w: expiresAt must be an RFC 3339 timestamp", service.ErrInvalidInput)
)
