package reconcile

import (
	"strings"

	"roster-data-service/internal/domain/imports"
	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/reconcile/normalize"
)

// nameVerdict classifies one candidate's name similarity to a row.
type nameVerdict int

const (
	verdictTeamPositionOnly nameVerdict = iota
	verdictPartialName
	verdictExact
)

// MatchResult is the decision for a single import row. MatchedPlayer is set
// only for the exact and high tiers, or as a surfaced best guess on medium.
type MatchResult struct {
	Row           imports.Row            `json:"row"`
	MatchedPlayer *players.PlayerRecord  `json:"matchedPlayer,omitempty"`
	Confidence    Confidence             `json:"confidence"`
	Alternatives  []players.PlayerRecord `json:"alternatives,omitempty"`
}

// Match resolves one import row against the candidate index. It is
// deterministic and never errors: anything short of a confident link comes
// back as a lower confidence tier.
func Match(row imports.Row, index *Index) MatchResult {
	result := MatchResult{Row: row, Confidence: ConfidenceNone}

	// An empty name must never match anything, not even as a degenerate
	// substring of every candidate.
	name := normalize.Name(row.Name)
	if name == "" {
		return result
	}

	candidates := index.Candidates(row.Team, row.Position)
	if len(candidates) == 0 {
		// Not in this week's pool; a team/position miss is not a name failure.
		return result
	}

	var exact, partial []players.PlayerRecord
	for _, c := range candidates {
		switch classifyName(name, c) {
		case verdictExact:
			exact = append(exact, c)
		case verdictPartialName:
			partial = append(partial, c)
		}
	}

	switch {
	case len(exact) == 1:
		result.Confidence = ConfidenceExact
		result.MatchedPlayer = recordPtr(exact[0])
	case len(exact) == 0 && len(partial) == 1:
		result.Confidence = ConfidenceHigh
		result.MatchedPlayer = recordPtr(partial[0])
	case len(exact) > 1:
		// Duplicate names on the same team and position (Jr./Sr. suffixes).
		result.Confidence = ConfidenceMedium
		result.MatchedPlayer = recordPtr(exact[0])
		result.Alternatives = append([]players.PlayerRecord(nil), exact[1:]...)
	case len(partial) > 1:
		result.Confidence = ConfidenceMedium
		result.MatchedPlayer = recordPtr(partial[0])
		result.Alternatives = append([]players.PlayerRecord(nil), partial[1:]...)
	default:
		// Candidates exist for the team/position but none matched by name.
		result.Confidence = ConfidenceLow
		result.Alternatives = append([]players.PlayerRecord(nil), candidates...)
	}

	return result
}

// classifyName compares a normalized row name against one candidate.
func classifyName(rowName string, candidate players.PlayerRecord) nameVerdict {
	display := normalize.Name(candidate.DisplayName)
	if display != "" && rowName == display {
		return verdictExact
	}
	if display != "" && strings.Contains(display, rowName) {
		return verdictPartialName
	}

	first := normalize.Name(candidate.FirstName)
	last := normalize.Name(candidate.LastName)
	tokens := strings.Fields(rowName)
	if len(tokens) < 2 || first == "" || last == "" {
		return verdictTeamPositionOnly
	}

	head := tokens[0]
	rest := strings.Join(tokens[1:], " ")
	switch {
	case head == first && rest == last:
		return verdictPartialName
	case head == last && rest == first:
		// "Last, First" exports; the normalizer already dropped the comma.
		return verdictPartialName
	case len(head) == 1 && strings.HasPrefix(first, head) && rest == last:
		// Abbreviated first names ("P Mahomes").
		return verdictPartialName
	}
	return verdictTeamPositionOnly
}

func recordPtr(p players.PlayerRecord) *players.PlayerRecord {
	return &p
}
