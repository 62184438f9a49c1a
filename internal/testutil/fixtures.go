package testutil

import (
	"roster-data-service/internal/domain/players"
)

// SamplePlayer returns a minimal player fixture with the provided id.
func SamplePlayer(id int) players.PlayerRecord {
	return players.PlayerRecord{
		ID:          id,
		DisplayName: "Sam Example",
		FirstName:   "Sam",
		LastName:    "Example",
		Team:        "KC",
		Position:    players.PositionQB,
		Meta:        players.PlayerMeta{UpstreamPlayerID: "test", Status: "Active"},
	}
}

// SampleDirectory builds a DirectoryResponse with a single sample player and date.
func SampleDirectory(date string, id int) players.DirectoryResponse {
	return players.NewDirectoryResponse(date, []players.PlayerRecord{SamplePlayer(id)})
}
