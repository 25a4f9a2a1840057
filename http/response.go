package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"track-roi/logger"
)

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written 200 response.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Error writing response: %v", err)
	}
}
