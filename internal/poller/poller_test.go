package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/metrics"
)

type stubProvider struct {
	mu      sync.Mutex
	calls   int
	records []players.PlayerRecord
	err     error
}

func (s *stubProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.records, s.err
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubSink struct {
	mu      sync.Mutex
	updates [][]players.PlayerRecord
}

func (s *stubSink) ReplacePlayers(records []players.PlayerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, records)
}

func (s *stubSink) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

type stubWriter struct {
	mu    sync.Mutex
	dates []string
	err   error
}

func (s *stubWriter) WriteDirectorySnapshot(date string, snapshot players.DirectoryResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates = append(s.dates, date)
	return s.err
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestPollerWarmsOnStart(t *testing.T) {
	provider := &stubProvider{records: []players.PlayerRecord{{ID: 1, DisplayName: "Sam Example"}}}
	sink := &stubSink{}
	writer := &stubWriter{}
	p := New(provider, sink, writer, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	waitFor(t, time.Second, func() bool { return sink.updateCount() >= 1 })

	if provider.callCount() < 1 {
		t.Fatalf("expected at least one fetch, got %d", provider.callCount())
	}
	if !p.Status().IsReady() {
		t.Fatalf("expected poller to be ready after warm fetch")
	}
}

func TestPollerRecordsFailures(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	p := New(provider, &stubSink{}, &stubWriter{}, nil, metrics.NewRecorder(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	waitFor(t, time.Second, func() bool { return p.Status().ConsecutiveFailures >= 1 })

	status := p.Status()
	if status.LastError == "" {
		t.Fatalf("expected last error to be recorded")
	}
	if status.IsReady() {
		t.Fatalf("expected poller to not be ready without a success")
	}
}

func TestPollerTicksOnInterval(t *testing.T) {
	provider := &stubProvider{records: []players.PlayerRecord{{ID: 1}}}
	sink := &stubSink{}
	p := New(provider, sink, nil, nil, nil, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	waitFor(t, time.Second, func() bool { return provider.callCount() >= 2 })
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubProvider{}, nil, nil, nil, nil, time.Hour)
	p.Start(context.Background())
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestStatusIsReady(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "no success yet", status: Status{}, want: false},
		{name: "recent success", status: Status{LastSuccess: time.Now()}, want: true},
		{name: "repeated failures", status: Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.status.IsReady(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
