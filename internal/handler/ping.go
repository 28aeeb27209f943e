package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Ping проверяет соединение с базой данных, если она настроена
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.db == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
