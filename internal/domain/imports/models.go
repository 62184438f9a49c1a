package imports

// Kind distinguishes the CSV import flows that share the reconciliation engine.
type Kind string

const (
	// KindActuals is a weekly player actuals (scoring) import.
	KindActuals Kind = "actuals"
	// KindOwnership is an ownership-projection import.
	KindOwnership Kind = "ownership"
)

// Valid reports whether the kind is one of the known import flows.
func (k Kind) Valid() bool {
	return k == KindActuals || k == KindOwnership
}

// Row is one parsed CSV record. The identity fields are raw free text; the
// stat columns are carried through untouched so they can be written once a
// match is accepted downstream.
type Row struct {
	// Line is the 1-based CSV line the row came from, so review UIs can
	// correlate results back to the uploaded file.
	Line     int               `json:"line"`
	Name     string            `json:"name"`
	Team     string            `json:"team"`
	Position string            `json:"position"`
	Stats    map[string]string `json:"stats,omitempty"`
}
