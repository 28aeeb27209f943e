package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
)

// CreateURL обрабатывает POST /api/shorten и POST /shorten.
// Анонимные пользователи могут создавать только сгенерированные коды.
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if !h.decodeJSON(w, req, &request) {
		return
	}

	owner, _ := h.getUserIDFromRequest(req)

	response, err := h.usecase.CreateShortURL(req.Context(), request, owner)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Location", response.ShortURL)
	h.writeJSON(w, http.StatusCreated, response)
}
