package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	appimports "roster-data-service/internal/app/imports"
	appplayers "roster-data-service/internal/app/players"
	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/poller"
	"roster-data-service/internal/snapshots"
	"roster-data-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc      *appplayers.Service
	imports  *appimports.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appplayers.Service, imports *appimports.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		imports:  imports,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// PlayersDirectory returns the current player directory. With ?date=YYYY-MM-DD
// it serves the snapshot for that day instead of the live cache.
func (h *Handler) PlayersDirectory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	dateParam := r.URL.Query().Get("date")

	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		// Explicit date queries serve snapshots only, never the live cache.
		if h.snaps == nil {
			writeError(w, r, nethttp.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		snap, err := h.snaps.LoadDirectory(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		if logger != nil {
			logger.Info("served snapshot directory", "date", snap.Date, "provider", "snapshot", "count", len(snap.Players))
		}
		writeJSON(w, nethttp.StatusOK, snap, h.logger)
		return
	}

	records := h.svc.Players()
	date := timeutil.FormatDate(h.now())
	if len(records) == 0 && h.snaps != nil {
		// Cold cache on boot; fall back to today's snapshot if present.
		if snap, err := h.snaps.LoadDirectory(date); err == nil {
			records = snap.Players
			date = snap.Date
		}
	}
	if logger != nil {
		logger.Info("served cached directory", "date", date, "provider", "cache", "count", len(records))
	}
	writeJSON(w, nethttp.StatusOK, players.NewDirectoryResponse(date, records), h.logger)
}

// PlayerByID returns a single player record if present.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	idRaw := strings.TrimPrefix(r.URL.Path, "/players/")
	if idRaw == "" || strings.Contains(idRaw, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	id, err := strconv.Atoi(idRaw)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	record, ok := h.svc.PlayerByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, record, h.logger)
}
