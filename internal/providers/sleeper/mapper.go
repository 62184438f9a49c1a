package sleeper

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"roster-data-service/internal/domain/players"
)

// nflTeams assigns each franchise a stable offset for synthetic defense ids.
var nflTeams = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE",
	"DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
	"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG",
	"NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WAS",
}

var defenseIDs = func() map[string]int {
	ids := make(map[string]int, len(nflTeams))
	for i, team := range nflTeams {
		ids[team] = defenseIDBase + i
	}
	return ids
}()

func mapDirectory(payload playersResponse) []players.PlayerRecord {
	records := make([]players.PlayerRecord, 0, len(payload))
	for _, p := range payload {
		record, ok := mapPlayer(p)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records
}

func mapPlayer(p playerResponse) (players.PlayerRecord, bool) {
	position, ok := mapPosition(p)
	if !ok {
		return players.PlayerRecord{}, false
	}
	if p.Team == "" {
		return players.PlayerRecord{}, false
	}

	id, ok := resolveID(p, position)
	if !ok {
		return players.PlayerRecord{}, false
	}

	display := strings.TrimSpace(p.FullName)
	if display == "" {
		display = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}

	jersey := ""
	if p.Number > 0 {
		jersey = strconv.Itoa(p.Number)
	}

	return players.PlayerRecord{
		ID:          id,
		DisplayName: display,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Team:        strings.ToUpper(p.Team),
		Position:    position,
		Meta: players.PlayerMeta{
			UpstreamPlayerID: fmt.Sprintf("%s-%s", providerName, p.PlayerID),
			Status:           p.Status,
			JerseyNumber:     jersey,
		},
	}, true
}

func mapPosition(p playerResponse) (players.Position, bool) {
	candidates := append([]string{p.Position}, p.FantasyPositions...)
	for _, raw := range candidates {
		switch strings.ToUpper(strings.TrimSpace(raw)) {
		case "QB":
			return players.PositionQB, true
		case "RB", "FB":
			return players.PositionRB, true
		case "WR":
			return players.PositionWR, true
		case "TE":
			return players.PositionTE, true
		case "DEF", "DST", "D/ST":
			return players.PositionDST, true
		}
	}
	return "", false
}

func resolveID(p playerResponse, position players.Position) (int, bool) {
	if position == players.PositionDST {
		id, ok := defenseIDs[strings.ToUpper(p.Team)]
		return id, ok
	}
	id, err := strconv.Atoi(p.PlayerID)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
