package sleeper

import "time"

const providerName = "sleeper"

const (
	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 30 * time.Second
	playersPath        = "/players/nfl"
)

// Team defenses arrive keyed by abbreviation rather than numeric id, so they
// get synthetic ids in a reserved range above any upstream player id.
const defenseIDBase = 100000
