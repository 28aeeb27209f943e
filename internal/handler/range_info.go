package handler

import "net/http"

// RangeInfo отдаёт состояние диапазона кодов этого экземпляра
func (h *Handler) RangeInfo(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.usecase.RangeInfo())
}
