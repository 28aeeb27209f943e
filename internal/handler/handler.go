package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
)

// maxBodySize ограничение размера тела JSON-запросов
const maxBodySize = 1 << 20

//go:generate mockery --name=URLUsecase --dir=. --output=../mocks --outpkg=mocks --with-expecter

// URLUsecase определяет операции, доступные HTTP-слою
type URLUsecase interface {
	CreateShortURL(ctx context.Context, req model.ShortenRequest, owner string) (model.ShortenResponse, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetUserURLs(ctx context.Context, owner string) ([]model.UserURLResponse, error)
	AddAlias(ctx context.Context, code string, req model.AliasRequest, owner string) (model.AliasResponse, error)
	DeactivateURL(ctx context.Context, code, owner string) error
	RangeInfo() model.RangeSnapshot
}

//go:generate mockery --name=HealthChecker --dir=. --output=../mocks --outpkg=mocks --with-expecter

// HealthChecker проверяет доступность хранилища
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// TokenIssuer выпускает токены пользователей
type TokenIssuer interface {
	GenerateUserID() string
	GenerateJWT(userID string) (string, time.Time, error)
	SetCookie(w http.ResponseWriter, token string, expiresAt time.Time)
}

// Handler обрабатывает HTTP-запросы сервиса
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
	db      HealthChecker
	tokens  TokenIssuer
}

// New создает Handler; db может быть nil, если хранилище не требует проверки
func New(usecase URLUsecase, logger *zap.Logger, db HealthChecker, tokens TokenIssuer) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		db:      db,
		tokens:  tokens,
	}
}

func (h *Handler) getUserIDFromRequest(req *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(req.Context())
}

func (h *Handler) decodeJSON(w http.ResponseWriter, req *http.Request, dst any) bool {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodySize)

	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return false
	}

	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, model.ErrorResponse{Error: model.ErrorBody{Code: code, Message: message}})
}

// handleError переводит ошибки предметной области в HTTP-статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, service.ErrNotAuthorized):
		h.writeError(w, http.StatusUnauthorized, "unauthorized", service.ErrNotAuthorized.Error())
	case errors.Is(err, service.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "forbidden", service.ErrForbidden.Error())
	case errors.Is(err, service.ErrURLNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", service.ErrURLNotFound.Error())
	case errors.Is(err, service.ErrAliasTaken):
		h.writeError(w, http.StatusConflict, "alias_taken", service.ErrAliasTaken.Error())
	case errors.Is(err, service.ErrCreationUnavailable):
		w.Header().Set("Retry-After", "1")
		h.writeError(w, http.StatusServiceUnavailable, "unavailable", service.ErrCreationUnavailable.Error())
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

