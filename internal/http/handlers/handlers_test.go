package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appplayers "roster-data-service/internal/app/players"
	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/poller"
	"roster-data-service/internal/snapshots"
	"roster-data-service/internal/store"
)

func seededService() *appplayers.Service {
	st := store.NewMemoryStore()
	st.SetPlayers([]players.PlayerRecord{
		{ID: 1, DisplayName: "Sam Example", FirstName: "Sam", LastName: "Example", Team: "KC", Position: players.PositionQB},
		{ID: 2, DisplayName: "Alex Rivers", FirstName: "Alex", LastName: "Rivers", Team: "BUF", Position: players.PositionRB},
	})
	return appplayers.NewService(st)
}

func TestHealth(t *testing.T) {
	h := NewHandler(seededService(), nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h := NewHandler(seededService(), nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	ready := poller.Status{LastSuccess: time.Now()}
	notReady := poller.Status{ConsecutiveFailures: 5, LastError: "upstream down"}

	cases := []struct {
		name   string
		status poller.Status
		want   int
	}{
		{name: "ready", status: ready, want: http.StatusOK},
		{name: "not ready", status: notReady, want: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(seededService(), nil, nil, nil, func() poller.Status { return tc.status })
			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()

			h.Ready(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestPlayersDirectoryServesCache(t *testing.T) {
	h := NewHandler(seededService(), nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	rec := httptest.NewRecorder()

	h.PlayersDirectory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload players.DirectoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(payload.Players))
	}
	if payload.Players[0].ID != 1 {
		t.Fatalf("expected sorted players, got %+v", payload.Players)
	}
}

func TestPlayersDirectoryRejectsBadDate(t *testing.T) {
	h := NewHandler(seededService(), nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/players?date=09-01-2025", nil)
	rec := httptest.NewRecorder()

	h.PlayersDirectory(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPlayersDirectoryServesSnapshotForDate(t *testing.T) {
	base := t.TempDir()
	writer := snapshots.NewWriter(base, 14)
	snap := players.NewDirectoryResponse("2025-09-01", []players.PlayerRecord{
		{ID: 9, DisplayName: "Chris Vale", Team: "PHI", Position: players.PositionWR},
	})
	if err := writer.WriteDirectorySnapshot("2025-09-01", snap); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	h := NewHandler(seededService(), nil, snapshots.NewFSStore(base), nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/players?date=2025-09-01", nil)
	rec := httptest.NewRecorder()

	h.PlayersDirectory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload players.DirectoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Players) != 1 || payload.Players[0].ID != 9 {
		t.Fatalf("expected snapshot players, got %+v", payload.Players)
	}
}

func TestPlayersDirectoryMissingSnapshot(t *testing.T) {
	h := NewHandler(seededService(), nil, snapshots.NewFSStore(t.TempDir()), nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/players?date=2025-09-01", nil)
	rec := httptest.NewRecorder()

	h.PlayersDirectory(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestPlayerByID(t *testing.T) {
	h := NewHandler(seededService(), nil, nil, nil, nil)

	cases := []struct {
		name string
		path string
		want int
	}{
		{name: "found", path: "/players/1", want: http.StatusOK},
		{name: "not found", path: "/players/99", want: http.StatusNotFound},
		{name: "not numeric", path: "/players/abc", want: http.StatusBadRequest},
		{name: "nested path", path: "/players/1/stats", want: http.StatusBadRequest},
		{name: "negative", path: "/players/-2", want: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()

			h.PlayerByID(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
