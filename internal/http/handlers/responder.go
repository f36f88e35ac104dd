package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arcade-roulette-service/internal/http/middleware"
	"arcade-roulette-service/internal/http/requestutil"
	"arcade-roulette-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func errorBody(r *http.Request, message string) map[string]any {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]any{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	return body
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody(r, message), logger)
}

// writeValidationError answers 422 with one message per invalid field.
func writeValidationError(w http.ResponseWriter, r *http.Request, message string, fields map[string]string, logger *slog.Logger) {
	body := errorBody(r, message)
	body["fields"] = fields
	writeJSON(w, http.StatusUnprocessableEntity, body, logger)
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// pathParam reads a chi URL parameter, falling back to the path segment after prefix.
func pathParam(r *http.Request, name, prefix string) string {
	if v := chi.URLParam(r, name); v != "" {
		return v
	}
	return requestutil.PathID(r, prefix)
}
