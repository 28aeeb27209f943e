package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubTokens struct {
	userID string
	err    error
}

func (s stubTokens) UserFromRequest(*http.Request) (string, error) {
	return s.userID, s.err
}

func captureUser(got *string, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*got, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	tests := []struct {
		name     string
		tokens   stubTokens
		wantUser string
	}{
		{name: "Valid token", tokens: stubTokens{userID: "user-1"}, wantUser: "user-1"},
		{name: "No token", tokens: stubTokens{}},
		{name: "Invalid token is anonymous", tokens: stubTokens{err: errors.New("bad signature")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var (
				got    string
				called bool
			)
			am := NewAuthMiddleware(tt.tokens, zap.NewNop())
			rec := httptest.NewRecorder()

			// Act
			am.OptionalAuth(captureUser(&got, &called)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/shorten", nil))

			// Assert
			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantUser, got)
			assert.Empty(t, rec.Result().Cookies(), "tokens are issued only by /api/auth/token")
		})
	}
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		tokens     stubTokens
		wantStatus int
		wantUser   string
	}{
		{name: "Valid token", tokens: stubTokens{userID: "user-1"}, wantStatus: http.StatusOK, wantUser: "user-1"},
		{name: "No token", tokens: stubTokens{}, wantStatus: http.StatusUnauthorized},
		{name: "Invalid token", tokens: stubTokens{err: errors.New("expired")}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var (
				got    string
				called bool
			)
			am := NewAuthMiddleware(tt.tokens, zap.NewNop())
			rec := httptest.NewRecorder()

			// Act
			am.RequireAuth(captureUser(&got, &called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/urls", nil))

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
			assert.Equal(t, tt.wantUser, got)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.True(t, json.Valid(rec.Body.Bytes()))
				assert.Contains(t, rec.Body.String(), `"unauthorized"`)
			}
		})
	}
}
