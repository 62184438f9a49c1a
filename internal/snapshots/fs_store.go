package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"roster-data-service/internal/domain/players"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadDirectory(date string) (players.DirectoryResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDirectory reads a player directory snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/players/{date}.json with a DirectoryResponse payload.
func (s *FSStore) LoadDirectory(date string) (players.DirectoryResponse, error) {
	var payload players.DirectoryResponse
	if err := s.load(kindPlayers, date, &payload); err != nil {
		return players.DirectoryResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
