package providers

import (
	"context"

	"roster-data-service/internal/domain/players"
)

// PlayerProvider defines how upstream roster data is fetched and normalized.
// Implementations return the full player directory for the supported sport.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error)
}
