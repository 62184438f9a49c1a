package players

// Position identifies a fantasy-relevant roster slot.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionDST Position = "DST"
)

// PlayerRecord is the normalized player shape served by the directory.
// The reconciliation engine treats these as a read-only snapshot.
type PlayerRecord struct {
	ID          int        `json:"id"`
	DisplayName string     `json:"displayName"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Team        string     `json:"team"`
	Position    Position   `json:"position"`
	Meta        PlayerMeta `json:"meta"`
}

// PlayerMeta holds upstream metadata.
type PlayerMeta struct {
	UpstreamPlayerID string `json:"upstreamPlayerId"`
	Status           string `json:"status"`
	JerseyNumber     string `json:"jerseyNumber"`
}

// DirectoryResponse is the payload returned by /players.
type DirectoryResponse struct {
	Date    string         `json:"date"`
	Players []PlayerRecord `json:"players"`
}

// NewDirectoryResponse builds the directory payload for a given date.
func NewDirectoryResponse(date string, records []PlayerRecord) DirectoryResponse {
	if records == nil {
		records = []PlayerRecord{}
	}
	return DirectoryResponse{Date: date, Players: records}
}
