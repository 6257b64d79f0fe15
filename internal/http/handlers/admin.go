package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/http/requestutil"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/poller"
)

// Invalidator drops cached entries for a league.
type Invalidator interface {
	Invalidate(ctx context.Context, league leagues.League) (int, error)
}

// AdminHandler exposes admin-only endpoints (cache refresh).
type AdminHandler struct {
	cache   Invalidator
	refresh poller.RefreshFunc
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. refresh re-warms a league after its entries are
// dropped and may be nil.
func NewAdminHandler(cache Invalidator, refresh poller.RefreshFunc, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache:   cache,
		refresh: refresh,
		token:   token,
		logger:  logger,
	}
}

// RefreshCache drops the cached entries for ?league= and fetches them again.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	league, ok := leagues.Parse(r.URL.Query().Get("league"))
	if !ok {
		logging.Warn(logger, "admin refresh invalid league", slog.String(logging.FieldLeague, r.URL.Query().Get("league")))
		writeError(w, r, http.StatusBadRequest, "unsupported league", logger)
		return
	}

	dropped, err := h.cache.Invalidate(r.Context(), league)
	if err != nil {
		logging.Error(logger, "admin cache invalidate failed", err, slog.String(logging.FieldLeague, league.String()))
		writeError(w, r, http.StatusInternalServerError, "failed to invalidate cache", logger)
		return
	}

	records := 0
	status := "invalidated"
	if h.refresh != nil {
		records, err = h.refresh(r.Context(), league)
		if err != nil {
			logging.Warn(logger, "admin cache rewarm degraded",
				slog.String(logging.FieldLeague, league.String()),
				slog.Any("err", err),
			)
			status = "degraded"
		} else {
			status = "ok"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"league":  league,
		"dropped": dropped,
		"records": records,
		"status":  status,
	}, logger)
	logging.Info(logger, "admin cache refreshed",
		slog.String(logging.FieldLeague, league.String()),
		slog.Int("dropped", dropped),
		slog.Int(logging.FieldCount, records),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

func clientIP(r *http.Request) string {
	return requestutil.ClientIP(r)
}
