package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"roster-data-service/internal/domain/players"
)

type scriptedProvider struct {
	calls   int
	failFor int
	records []players.PlayerRecord
	err     error
}

func (s *scriptedProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	s.calls++
	if s.calls <= s.failFor {
		if s.err != nil {
			return nil, s.err
		}
		return nil, errors.New("scripted failure")
	}
	return s.records, nil
}

func TestRetryingProviderSucceedsAfterFailures(t *testing.T) {
	inner := &scriptedProvider{
		failFor: 2,
		records: []players.PlayerRecord{{ID: 1, DisplayName: "Sam Example"}},
	}
	provider := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	records, err := provider.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("offline")
	inner := &scriptedProvider{failFor: 10, err: sentinel}
	provider := NewRetryingProvider(inner, nil, 2, time.Millisecond)

	_, err := provider.FetchPlayers(context.Background())
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected last error to surface, got %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderStopsOnCanceledContext(t *testing.T) {
	inner := &scriptedProvider{failFor: 10}
	provider := NewRetryingProvider(inner, nil, 5, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.FetchPlayers(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt before cancellation, got %d", inner.calls)
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	inner := &scriptedProvider{failFor: defaultRetryAttempts - 1}
	provider := NewRetryingProvider(inner, nil, 0, 0)

	if _, err := provider.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("expected default attempts to cover failures, got %v", err)
	}
}
