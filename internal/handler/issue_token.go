package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// IssueToken выпускает токен для нового пользователя и ставит его в куку
func (h *Handler) IssueToken(w http.ResponseWriter, req *http.Request) {
	userID := h.tokens.GenerateUserID()

	token, expiresAt, err := h.tokens.GenerateJWT(userID)
	if err != nil {
		h.logger.Error("failed to generate JWT", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to issue token")
		return
	}

	h.tokens.SetCookie(w, token, expiresAt)
	h.writeJSON(w, http.StatusOK, model.TokenResponse{Token: token, UserID: userID, ExpiresAt: expiresAt})
}
