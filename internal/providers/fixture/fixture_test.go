package fixture

import (
	"context"
	"testing"

	"roster-data-service/internal/domain/players"
)

func TestFetchPlayersIsDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	second, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected stable roster, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("expected stable ordering at index %d", i)
		}
	}
}

func TestFetchPlayersCoversEveryPosition(t *testing.T) {
	p := New()
	records, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}

	seen := make(map[players.Position]bool)
	for _, r := range records {
		seen[r.Position] = true
	}
	for _, pos := range []players.Position{
		players.PositionQB, players.PositionRB, players.PositionWR,
		players.PositionTE, players.PositionDST,
	} {
		if !seen[pos] {
			t.Fatalf("expected fixture roster to include %s", pos)
		}
	}
}
