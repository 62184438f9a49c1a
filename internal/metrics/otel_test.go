package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected a recorder even when telemetry is disabled")
	}
	if handler != nil {
		t.Fatalf("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "roster-data-service-test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()

	if handler == nil {
		t.Fatalf("expected a prometheus handler")
	}

	// Instrument recording must not panic with a live provider.
	rec.RecordHTTPRequest("POST", "/imports/actuals", 200, 5*time.Millisecond)
	rec.RecordImportBatch("actuals", 5*time.Millisecond, map[string]int{"exact": 1})
	rec.RecordPollerCycle(2*time.Millisecond, nil)
}
