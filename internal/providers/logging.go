package providers

import (
	"context"
	"log/slog"
	"time"

	"roster-data-service/internal/domain/players"
)

// loggingProvider wraps a PlayerProvider and records fetch outcomes.
type loggingProvider struct {
	next     PlayerProvider
	logger   *slog.Logger
	provider string
}

// NewLoggingProvider returns a PlayerProvider that logs each fetch with timing and result size.
func NewLoggingProvider(next PlayerProvider, logger *slog.Logger, provider string) PlayerProvider {
	return &loggingProvider{
		next:     next,
		logger:   logger,
		provider: provider,
	}
}

func (p *loggingProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	records, err := p.next.FetchPlayers(ctx)
	elapsed := time.Since(start)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.provider, "player fetch failed",
			slog.Duration("elapsed", elapsed), slog.Any("err", err))
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.provider, "player fetch succeeded",
		slog.Duration("elapsed", elapsed), slog.Int("players", len(records)))
	return records, nil
}

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
