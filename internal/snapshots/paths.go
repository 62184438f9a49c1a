package snapshots

import (
	"fmt"
	"path/filepath"
)

// DirectorySnapshotPath builds the path to a player directory snapshot for a given date.
func DirectorySnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "players", fmt.Sprintf("%s.json", date))
}
