package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: model.ErrorBody{Code: code, Message: message}})
}
