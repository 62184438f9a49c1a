package csvio

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRowsReadsIdentityAndStats(t *testing.T) {
	input := strings.Join([]string{
		"Player,Team,Pos,FPTS,Targets",
		"Patrick Mahomes,KC,QB,28.4,0",
		"Garrett Wilson,NYJ,WR,14.1,9",
	}, "\n")

	rows, err := ParseRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Line != 2 {
		t.Fatalf("expected line 2, got %d", first.Line)
	}
	if first.Name != "Patrick Mahomes" || first.Team != "KC" || first.Position != "QB" {
		t.Fatalf("unexpected identity fields: %+v", first)
	}
	if first.Stats["FPTS"] != "28.4" {
		t.Fatalf("expected FPTS stat to pass through, got %+v", first.Stats)
	}
	if _, ok := first.Stats["Targets"]; !ok {
		t.Fatalf("expected Targets stat to pass through, got %+v", first.Stats)
	}
}

func TestParseRowsHeaderAliases(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"canonical", "Name,Team,Position,Own%"},
		{"short", "Player,Tm,Pos,Own%"},
		{"underscored", "player_name,team,position,Own%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.header + "\nTravis Kelce,KC,TE,22.5\n"
			rows, err := ParseRows(strings.NewReader(input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rows) != 1 || rows[0].Name != "Travis Kelce" {
				t.Fatalf("expected one Kelce row, got %+v", rows)
			}
			if rows[0].Stats["Own%"] != "22.5" {
				t.Fatalf("expected ownership stat, got %+v", rows[0].Stats)
			}
		})
	}
}

func TestParseRowsShortRecordsYieldEmptyFields(t *testing.T) {
	input := "Name,Team,Position\nLonely Player\n"
	rows, err := ParseRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Team != "" || rows[0].Position != "" {
		t.Fatalf("expected empty team/position, got %+v", rows[0])
	}
}

func TestParseRowsMissingNameColumn(t *testing.T) {
	input := "Team,Position,FPTS\nKC,QB,28.4\n"
	if _, err := ParseRows(strings.NewReader(input)); !errors.Is(err, ErrMissingNameColumn) {
		t.Fatalf("expected ErrMissingNameColumn, got %v", err)
	}
}

func TestParseRowsMissingHeader(t *testing.T) {
	if _, err := ParseRows(strings.NewReader("")); err == nil {
		t.Fatalf("expected an error for an empty document")
	}
}

func TestParseRowsHeaderOnlyYieldsZeroRows(t *testing.T) {
	rows, err := ParseRows(strings.NewReader("Name,Team,Position\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected zero rows, got %d", len(rows))
	}
}
