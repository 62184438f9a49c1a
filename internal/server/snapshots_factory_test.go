package server

import (
	"testing"

	"roster-data-service/internal/config"
)

func TestBuildSnapshotsDisabled(t *testing.T) {
	snaps := buildSnapshots(config.Config{Snapshots: config.SnapshotsConfig{Enabled: false}})
	if snaps.store != nil || snaps.writer != nil {
		t.Fatalf("expected empty components when snapshots disabled")
	}
}

func TestBuildSnapshotsEnabled(t *testing.T) {
	cfg := config.Config{Snapshots: config.SnapshotsConfig{
		Enabled:       true,
		Dir:           t.TempDir(),
		RetentionDays: 7,
	}}
	snaps := buildSnapshots(cfg)
	if snaps.store == nil || snaps.writer == nil {
		t.Fatalf("expected store and writer when snapshots enabled")
	}
}
