package store

import (
	"sort"
	"sync"

	"roster-data-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe snapshot of the player directory in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[int]players.PlayerRecord
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[int]players.PlayerRecord),
	}
}

// ListPlayers returns a copy of the current directory, ordered by player ID.
func (s *MemoryStore) ListPlayers() []players.PlayerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.PlayerRecord, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id int) (players.PlayerRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// SetPlayers replaces the directory with a new snapshot.
func (s *MemoryStore) SetPlayers(records []players.PlayerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[int]players.PlayerRecord, len(records))
	for _, p := range records {
		s.players[p.ID] = p
	}
}
