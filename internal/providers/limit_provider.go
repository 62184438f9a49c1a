package providers

import (
	"context"
	"log/slog"
	"time"

	"roster-data-service/internal/domain/players"
)

// rateLimitedProvider wraps a PlayerProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     PlayerProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a PlayerProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next PlayerProvider, interval time.Duration, logger *slog.Logger) PlayerProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	if p == nil || p.next == nil {
		if p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	if p.logger != nil {
		p.logger.Info("rate-limited provider fetch", slog.String("provider", "rate-limited"))
	}
	return p.next.FetchPlayers(ctx)
}
