package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет на оригинальный адрес с кодом 301
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	url, err := h.usecase.GetOriginalURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, url, http.StatusMovedPermanently)
}
