package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// UserIDKey is the key used to store user ID in context
type UserIDKey string

const (
	// UserIDContextKey is the context key for user ID
	UserIDContextKey UserIDKey = "user_id"
)

// TokenValidator извлекает пользователя из запроса; пустая строка без
// ошибки означает анонимный запрос
type TokenValidator interface {
	UserFromRequest(r *http.Request) (string, error)
}

// AuthMiddleware представляет миддлвар для аутентификации пользователей
type AuthMiddleware struct {
	tokens TokenValidator
	logger *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// OptionalAuth добавляет user_id в контекст, если запрос несёт валидный токен.
// Запросы без токена или с неверным токеном обрабатываются как анонимные.
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := am.tokens.UserFromRequest(r)
		if err != nil {
			am.logger.Debug("ignoring invalid token", zap.Error(err))
		}
		if err == nil && userID != "" {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth отклоняет запросы без валидного токена с кодом 401
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := am.tokens.UserFromRequest(r)
		if err != nil {
			am.logger.Debug("rejected invalid token", zap.Error(err), zap.String("uri", r.RequestURI))
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
			return
		}
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с user_id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}
