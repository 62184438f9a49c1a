package testutil

import (
	"context"

	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/providers"
)

// GoodProvider returns the provided players with no error.
type GoodProvider struct {
	Players []players.PlayerRecord
}

func (p GoodProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	_ = ctx
	return p.Players, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	return nil, p.Err
}

// EmptyProvider returns no players, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	return []players.PlayerRecord{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPlayers(ctx context.Context) ([]players.PlayerRecord, error) {
	return nil, providers.ErrProviderUnavailable
}
