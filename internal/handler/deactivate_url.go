package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeactivateURL обрабатывает DELETE /api/urls/{code}
func (h *Handler) DeactivateURL(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	if err := h.usecase.DeactivateURL(req.Context(), chi.URLParam(req, "code"), userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
