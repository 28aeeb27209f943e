package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/allocator"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorBody {
	t.Helper()

	var body model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

// TestCreateURL_Success проверяет успешное создание короткой ссылки
func TestCreateURL_Success(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		owner string
	}{
		{name: "Anonymous /api/shorten", path: "/api/shorten"},
		{name: "Authenticated /shorten", path: "/shorten", owner: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			expected := model.ShortenResponse{
				ShortCode:   "g8",
				ShortURL:    "http://localhost:8080/g8",
				OriginalURL: "https://example.com",
				CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			}
			mockUsecase.EXPECT().
				CreateShortURL(mock.Anything, model.ShortenRequest{URL: "https://example.com"}, tt.owner).
				Return(expected, nil).
				Once()

			h := New(mockUsecase, zap.NewNop(), nil, nil)
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(`{"url":"https://example.com"}`))
			if tt.owner != "" {
				req = withUser(req, tt.owner)
			}
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, req)

			// Assert
			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, expected.ShortURL, w.Header().Get("Location"))

			var got model.ShortenResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Equal(t, expected, got)
		})
	}
}

// TestCreateURL_InvalidJSON проверяет HTTP обработку невалидного JSON
func TestCreateURL_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"url": "https://example.com"`},
		{name: "Empty body", body: ""},
		{name: "Not a JSON", body: "just plain text"},
		{name: "Wrong type", body: `{"url": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(mocks.NewMockURLUsecase(t), zap.NewNop(), nil, nil)
			w := httptest.NewRecorder()

			h.CreateURL(w, httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_request", decodeError(t, w).Code)
		})
	}
}

// TestHandleError проверяет соответствие ошибок HTTP-статусам
func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "Invalid input", err: fmt.Errorf("%w: url must have a host", service.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantCode: "invalid_input"},
		{name: "Not authorized", err: service.ErrNotAuthorized, wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "Forbidden", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "forbidden"},
		{name: "Not found", err: fmt.Errorf("wrap: %w", service.ErrURLNotFound), wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "Alias taken", err: service.ErrAliasTaken, wantStatus: http.StatusConflict, wantCode: "alias_taken"},
		{name: "Range exhausted", err: fmt.Errorf("%w: %w", service.ErrCreationUnavailable, allocator.ErrRangeExhausted), wantStatus: http.StatusServiceUnavailable, wantCode: "unavailable"},
		{name: "Unexpected", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().CreateShortURL(mock.Anything, mock.Anything, "").Return(model.ShortenResponse{}, tt.err).Once()
			h := New(mockUsecase, zap.NewNop(), nil, nil)
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":"x"}`)))

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
			assert.NotContains(t, body.Message, "disk on fire")
		})
	}
}

func TestGetURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		err          error
		wantStatus   int
		wantLocation string
	}{
		{name: "Redirect", url: "https://example.com/page", wantStatus: http.StatusMovedPermanently, wantLocation: "https://example.com/page"},
		{name: "Not found", err: service.ErrURLNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().GetOriginalURL(mock.Anything, "g8").Return(tt.url, tt.err).Once()
			h := New(mockUsecase, zap.NewNop(), nil, nil)
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/g8", nil), "code", "g8")
			w := httptest.NewRecorder()

			// Act
			h.GetURL(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestGetUserURLs(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		// Arrange
		mockUsecase := mocks.NewMockURLUsecase(t)
		urls := []model.UserURLResponse{{ShortCode: "g8", ShortURL: "http://localhost:8080/g8", OriginalURL: "https://example.com", Active: true}}
		mockUsecase.EXPECT().GetUserURLs(mock.Anything, "user-1").Return(urls, nil).Once()
		h := New(mockUsecase, zap.NewNop(), nil, nil)
		w := httptest.NewRecorder()

		// Act
		h.GetUserURLs(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/urls", nil), "user-1"))

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var got []model.UserURLResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, urls, got)
	})

	t.Run("empty", func(t *testing.T) {
		mockUsecase := mocks.NewMockURLUsecase(t)
		mockUsecase.EXPECT().GetUserURLs(mock.Anything, "user-1").Return(nil, nil).Once()
		h := New(mockUsecase, zap.NewNop(), nil, nil)
		w := httptest.NewRecorder()

		h.GetUserURLs(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/urls", nil), "user-1"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		h := New(mocks.NewMockURLUsecase(t), zap.NewNop(), nil, nil)
		w := httptest.NewRecorder()

		h.GetUserURLs(w, httptest.NewRequest(http.MethodGet, "/api/user/urls", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAddAlias(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "Updated", body: `{"customCode":"my-link"}`, wantStatus: http.StatusOK},
		{name: "Taken", body: `{"customCode":"my-link"}`, err: service.ErrAliasTaken, wantStatus: http.StatusConflict},
		{name: "Forbidden", body: `{"customCode":"my-link"}`, err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "Invalid", body: `{"customCode":"x"}`, err: service.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "Unknown code", body: `{"customCode":"my-link"}`, err: service.ErrURLNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var request model.AliasRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &request))

			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				AddAlias(mock.Anything, "g8", request, "user-1").
				Return(model.AliasResponse{Code: "g8", CustomCode: request.CustomCode, CustomURL: "http://localhost:8080/" + request.CustomCode}, tt.err).
				Once()
			h := New(mockUsecase, zap.NewNop(), nil, nil)

			req := httptest.NewRequest(http.MethodPut, "/api/urls/g8/alias", strings.NewReader(tt.body))
			req = withUser(withURLParam(req, "code", "g8"), "user-1")
			w := httptest.NewRecorder()

			// Act
			h.AddAlias(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var got model.AliasResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, "my-link", got.CustomCode)
			}
		})
	}
}

func TestAddAlias_Anonymous(t *testing.T) {
	h := New(mocks.NewMockURLUsecase(t), zap.NewNop(), nil, nil)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/urls/g8/alias", strings.NewReader(`{"customCode":"abc"}`)), "code", "g8")
	w := httptest.NewRecorder()

	h.AddAlias(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeactivateURL(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "Deactivated", wantStatus: http.StatusNoContent},
		{name: "Not found", err: service.ErrURLNotFound, wantStatus: http.StatusNotFound},
		{name: "Other owner", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().DeactivateURL(mock.Anything, "g8", "user-1").Return(tt.err).Once()
			h := New(mockUsecase, zap.NewNop(), nil, nil)
			req := withUser(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/urls/g8", nil), "code", "g8"), "user-1")
			w := httptest.NewRecorder()

			// Act
			h.DeactivateURL(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestIssueToken(t *testing.T) {
	// Arrange
	auth := service.NewAuthService("secret", time.Hour)
	h := New(nil, zap.NewNop(), nil, auth)
	w := httptest.NewRecorder()

	// Act
	h.IssueToken(w, httptest.NewRequest(http.MethodPost, "/api/auth/token", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)

	var got model.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.NotEmpty(t, got.UserID)

	userID, err := auth.ValidateJWT(got.Token)
	require.NoError(t, err)
	assert.Equal(t, got.UserID, userID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, service.CookieName, cookies[0].Name)
	assert.Equal(t, got.Token, cookies[0].Value)
}

func TestRangeInfo(t *testing.T) {
	// Arrange
	next := int64(2000)
	snapshot := model.RangeSnapshot{InstanceID: "node-a", Start: 1000, Cursor: 1500, End: 1999, Remaining: 500, NextStart: &next, Refills: 1, Ready: true}
	mockUsecase := mocks.NewMockURLUsecase(t)
	mockUsecase.EXPECT().RangeInfo().Return(snapshot).Once()
	h := New(mockUsecase, zap.NewNop(), nil, nil)
	w := httptest.NewRecorder()

	// Act
	h.RangeInfo(w, httptest.NewRequest(http.MethodGet, "/api/range", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"instanceId":"node-a","start":1000,"cursor":1500,"end":1999,"remaining":500,"nextStart":2000,"refills":1,"ready":true}`,
		w.Body.String(),
	)
}

func TestPing_Success(t *testing.T) {
	mockDB := mocks.NewMockHealthChecker(t)
	mockDB.EXPECT().Ping(mock.Anything).Return(nil).Once()

	h := New(nil, zap.NewNop(), mockDB, nil)
	w := httptest.NewRecorder()

	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPing_DatabaseError(t *testing.T) {
	mockDB := mocks.NewMockHealthChecker(t)
	mockDB.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()

	h := New(nil, zap.NewNop(), mockDB, nil)
	w := httptest.NewRecorder()

	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPing_DatabaseNotConfigured(t *testing.T) {
	h := New(nil, zap.NewNop(), nil, nil)
	w := httptest.NewRecorder()

	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
