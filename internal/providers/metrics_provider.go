package providers

import (
	"context"
	"time"

	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/metrics"
)

// instrumentedProvider wraps a PlayerProvider and records attempt/rate-limit metrics.
type instrumentedProvider struct {
	next     PlayerProvider
	recorder *metrics.Recorder
	provider string
}

// NewInstrumentedProvider returns a PlayerProvider that reports fetch metrics.
func NewInstrumentedProvider(next PlayerProvider, recorder *metrics.Recorder, provider string) PlayerProvider {
	return &instrumentedProvider{
		next:     next,
		recorder: recorder,
		provider: provider,
	}
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	records, err := p.next.FetchPlayers(ctx)
	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.provider, time.Since(start), err)
		if rlErr, ok := AsRateLimitError(err); ok {
			p.recorder.RecordRateLimit(p.provider, rlErr.RetryAfter)
		}
	}
	return records, err
}
