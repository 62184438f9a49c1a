package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roster-data-service/internal/providers"
)

const samplePayload = `{
  "4046": {"player_id":"4046","first_name":"Sam","last_name":"Example","full_name":"Sam Example","team":"KC","position":"QB","status":"Active","number":15},
  "221": {"player_id":"221","first_name":"Pat","last_name":"Block","full_name":"Pat Block","team":"SF","position":"RB","number":44},
  "77": {"player_id":"77","first_name":"Leg","last_name":"Boot","team":"NE","position":"K"},
  "DAL": {"player_id":"DAL","first_name":"Dallas","last_name":"Cowboys","team":"DAL","position":"DEF"}
}`

func TestFetchPlayersMapsDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/nfl" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	records, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}

	// kicker filtered out, three fantasy-relevant entries remain
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != 221 || records[1].ID != 4046 {
		t.Fatalf("expected ascending ids, got %d, %d", records[0].ID, records[1].ID)
	}
	if records[2].ID != defenseIDs["DAL"] {
		t.Fatalf("expected defense synthetic id, got %d", records[2].ID)
	}
}

func TestFetchPlayersRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := client.FetchPlayers(context.Background())
	if err == nil {
		t.Fatalf("expected rate limit error")
	}
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %T", err)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rlErr.StatusCode)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after 30s, got %v", rlErr.RetryAfter)
	}
}

func TestFetchPlayersUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.FetchPlayers(context.Background()); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestFetchPlayersHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.FetchPlayers(ctx); err == nil {
		t.Fatalf("expected context deadline error")
	}
}
