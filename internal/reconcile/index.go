package reconcile

import (
	"errors"
	"sort"

	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/reconcile/normalize"
)

// ErrEmptyDirectory signals that the caller handed over an empty player
// directory snapshot. That is an upstream configuration problem, not a
// matchable state, so it is surfaced instead of silently degrading.
var ErrEmptyDirectory = errors.New("reconcile: empty player directory snapshot")

type indexKey struct {
	team     string
	position string
}

// Index is an in-memory lookup over the player directory, keyed by normalized
// (team, position). It narrows the candidate set before any name comparison,
// which also guarantees a WR and a TE sharing a surname can never merge.
// An Index is immutable after construction and safe for concurrent readers.
type Index struct {
	byKey map[indexKey][]players.PlayerRecord
	size  int
}

// NewIndex builds a candidate index from a directory snapshot.
func NewIndex(directory []players.PlayerRecord) (*Index, error) {
	if len(directory) == 0 {
		return nil, ErrEmptyDirectory
	}

	byKey := make(map[indexKey][]players.PlayerRecord)
	for _, p := range directory {
		key := indexKey{
			team:     normalize.Team(p.Team),
			position: normalize.Position(string(p.Position)),
		}
		byKey[key] = append(byKey[key], p)
	}

	// Candidate order within a key is pinned to player ID so match results do
	// not depend on the directory's iteration order.
	for _, candidates := range byKey {
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].ID < candidates[j].ID
		})
	}

	return &Index{byKey: byKey, size: len(directory)}, nil
}

// Candidates returns every player sharing the row's normalized team and
// position. The returned slice is shared and must not be mutated.
func (ix *Index) Candidates(team, position string) []players.PlayerRecord {
	if ix == nil {
		return nil
	}
	key := indexKey{
		team:     normalize.Team(team),
		position: normalize.Position(position),
	}
	return ix.byKey[key]
}

// Size returns the number of indexed players.
func (ix *Index) Size() int {
	if ix == nil {
		return 0
	}
	return ix.size
}
