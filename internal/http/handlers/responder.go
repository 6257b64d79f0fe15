package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"sports-gateway/internal/gateway"
	"sports-gateway/internal/http/middleware"
	"sports-gateway/internal/logging"
)

// provenanceHeader mirrors the provenance field for clients that only inspect headers.
const provenanceHeader = "X-Data-Provenance"

// resultMeta is embedded in every gateway-backed response body.
type resultMeta struct {
	Provenance gateway.Provenance `json:"provenance"`
	FetchedAt  time.Time          `json:"fetchedAt"`
	CacheHit   bool               `json:"cacheHit"`
	Count      int                `json:"count"`
}

func metaOf(provenance gateway.Provenance, fetchedAt time.Time, cacheHit bool, count int) resultMeta {
	return resultMeta{Provenance: provenance, FetchedAt: fetchedAt, CacheHit: cacheHit, Count: count}
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeResult writes a gateway-backed payload and sets the provenance header.
func writeResult(w http.ResponseWriter, provenance gateway.Provenance, payload any, logger *slog.Logger) {
	if provenance != "" {
		w.Header().Set(provenanceHeader, string(provenance))
	}
	writeJSON(w, http.StatusOK, payload, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
