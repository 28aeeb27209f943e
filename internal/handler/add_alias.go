package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avc-dev/shortlink/internal/model"
)

// AddAlias обрабатывает PUT /api/urls/{code}/alias
func (h *Handler) AddAlias(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var request model.AliasRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	response, err := h.usecase.AddAlias(req.Context(), chi.URLParam(req, "code"), request, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
