package http

import (
	nethttp "net/http"

	"roster-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.PlayersDirectory)
	mux.HandleFunc("/players/", handler.PlayerByID)
	mux.HandleFunc("/imports/actuals", handler.ImportActuals)
	mux.HandleFunc("/imports/ownership", handler.ImportOwnership)
	if admin != nil {
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}
	return mux
}
