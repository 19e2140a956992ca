package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/tiffins/internal/auth"
	"github.com/mmynk/tiffins/internal/service"
	"github.com/mmynk/tiffins/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the machine-readable error body {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// respondError maps a service-layer error to its HTTP response.
// 401 and 404 are intentionally bodyless: credential failures say nothing
// about why, and a foreign order looks exactly like a missing one.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Code)
	case errors.Is(err, auth.ErrEmailExists):
		writeError(w, http.StatusBadRequest, "email_exists")
	case errors.Is(err, auth.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, "weak_password")
	case errors.Is(err, auth.ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, auth.ErrNoSecret):
		writeError(w, http.StatusInternalServerError, "server_misconfig")
	case errors.Is(err, storage.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		slog.Error("unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
