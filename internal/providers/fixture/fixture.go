package fixture

import (
	"context"

	"roster-data-service/internal/domain/players"
)

// Provider returns a static roster useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic player directory covering every roster slot.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	_ = ctx

	return []players.PlayerRecord{
		{
			ID:          101,
			DisplayName: "Sam Example",
			FirstName:   "Sam",
			LastName:    "Example",
			Team:        "KC",
			Position:    players.PositionQB,
			Meta:        players.PlayerMeta{UpstreamPlayerID: "fixture-101", Status: "Active", JerseyNumber: "15"},
		},
		{
			ID:          102,
			DisplayName: "Alex Rivers",
			FirstName:   "Alex",
			LastName:    "Rivers",
			Team:        "BUF",
			Position:    players.PositionRB,
			Meta:        players.PlayerMeta{UpstreamPlayerID: "fixture-102", Status: "Active", JerseyNumber: "26"},
		},
		{
			ID:          103,
			DisplayName: "Jordan Banks",
			FirstName:   "Jordan",
			LastName:    "Banks",
			Team:        "BUF",
			Position:    players.PositionRB,
			Meta:        players.PlayerMeta{UpstreamPlayerID: "fixture-103", Status: "Active", JerseyNumber: "31"},
		},
		{
			ID:          104,
			DisplayName: "Chris Vale",
			FirstName:   "Chris",
			LastName:    "Vale",
			Team:        "PHI",
			Position:    players.PositionWR,
			Meta:        players.PlayerMeta{UpstreamPlayerID: "fixture-104", Status: "Active", JerseyNumber: "11"},
		},
		{
			ID:          105,
			DisplayName: "Taylor Reed",
			FirstName:   "Taylor",
			LastName:    "Reed",
			Team:        "SF",
			Position:    players.PositionTE,
			Meta:        players.PlayerMeta{UpstreamPlayerID: "fixture-105", Status: "Active", JerseyNumber: "85"},
		},
		{
			ID:          106,
			DisplayName: "Dallas Cowboys",
			Team:        "DAL",
			Position:    players.PositionDST,
			Meta:        players.PlayerMeta{UpstreamPlayerID: "fixture-DAL", Status: "Active"},
		},
	}, nil
}
