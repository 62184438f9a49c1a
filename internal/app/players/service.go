package players

import "roster-data-service/internal/domain/players"

// Store defines the contract for persisting and retrieving the directory.
type Store interface {
	ListPlayers() []players.PlayerRecord
	GetPlayer(id int) (players.PlayerRecord, bool)
	SetPlayers([]players.PlayerRecord)
}

// Service coordinates directory operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current directory snapshot.
func (s *Service) Players() []players.PlayerRecord {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int) (players.PlayerRecord, bool) {
	return s.store.GetPlayer(id)
}

// ReplacePlayers swaps the in-memory directory with a new snapshot.
func (s *Service) ReplacePlayers(records []players.PlayerRecord) {
	s.store.SetPlayers(records)
}
