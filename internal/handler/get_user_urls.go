package handler

import (
	"net/http"
)

// GetUserURLs возвращает ссылки текущего пользователя, 204 если их нет
func (h *Handler) GetUserURLs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		h.logger.Debug("user ID not found in context")
		h.writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	urls, err := h.usecase.GetUserURLs(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if len(urls) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, urls)
}
