package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/http/middleware"
	"roster-data-service/internal/logging"
	"roster-data-service/internal/providers"
	"roster-data-service/internal/snapshots"
	"roster-data-service/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., snapshot refresh).
type AdminHandler struct {
	writer   *snapshots.Writer
	provider providers.PlayerProvider
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider providers.PlayerProvider, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		token:    token,
		logger:   logger,
	}
}

// RefreshSnapshots writes a directory snapshot for the requested date (defaults to today).
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", middleware.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(time.Now())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin snapshot invalid date", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	records, err := h.provider.FetchPlayers(r.Context())
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed",
			slog.String("date", date),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch players", logger)
		return
	}
	if len(records) == 0 {
		logging.Warn(logger, "admin snapshot no players", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "no players to snapshot", logger)
		return
	}

	snap := players.NewDirectoryResponse(date, records)
	if err := h.writer.WriteDirectorySnapshot(date, snap); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String("date", date),
			slog.Int("count", len(records)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":    date,
		"players": len(records),
		"status":  "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String("date", date),
		slog.Int("count", len(records)),
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
