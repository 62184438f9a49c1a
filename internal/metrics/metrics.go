package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type importStats struct {
	batches          int
	rows             int
	rowsByTier       map[string]int
	lastBatchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and mirrors them to
// OpenTelemetry instruments when configured. All methods are nil-safe.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	imports map[string]*importStats
	otel    *otelInstruments
}

// NewRecorder returns a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*providerStats),
		imports: make(map[string]*importStats),
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for a directory fetch and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordHTTPRequest tracks one handled HTTP request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// RecordPollerCycle tracks one directory refresh cycle.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordPoller(duration, err)
	}
}

// RecordImportBatch tracks one reconciliation batch and its per-tier row counts.
func (r *Recorder) RecordImportBatch(kind string, duration time.Duration, tierCounts map[string]int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.imports[kind]
	if !ok {
		stats = &importStats{rowsByTier: make(map[string]int)}
		r.imports[kind] = stats
	}
	stats.batches++
	stats.lastBatchLatency = duration
	for tier, n := range tierCounts {
		stats.rows += n
		stats.rowsByTier[tier] += n
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordImportBatch(kind, duration, tierCounts)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.ProviderSnapshot(provider).RateLimitHits
}

// ImportBatches returns the number of batches recorded for an import kind.
func (r *Recorder) ImportBatches(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.imports[kind]; ok {
		return stats.batches
	}
	return 0
}

// ImportRows returns the rows recorded for an import kind and confidence tier.
func (r *Recorder) ImportRows(kind, tier string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.imports[kind]; ok {
		return stats.rowsByTier[tier]
	}
	return 0
}

// ProviderStatsSnapshot is a copy of the in-memory stats for one provider.
type ProviderStatsSnapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// ProviderSnapshot returns a copy of the stats recorded for a provider.
func (r *Recorder) ProviderSnapshot(provider string) ProviderStatsSnapshot {
	if r == nil {
		return ProviderStatsSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return ProviderStatsSnapshot{}
	}
	return ProviderStatsSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
