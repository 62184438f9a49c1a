package sleeper

// playersResponse is the /players/nfl payload: a map keyed by upstream player id.
type playersResponse map[string]playerResponse

type playerResponse struct {
	PlayerID         string   `json:"player_id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	FullName         string   `json:"full_name"`
	Team             string   `json:"team"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	Status           string   `json:"status"`
	Number           int      `json:"number"`
	Active           bool     `json:"active"`
}
