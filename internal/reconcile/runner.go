package reconcile

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"roster-data-service/internal/domain/imports"
)

// ErrNilIndex signals that Reconcile was called without a candidate index.
var ErrNilIndex = errors.New("reconcile: candidate index is required")

// parallelThreshold is the batch size below which worker fan-out is not worth
// the scheduling overhead.
const parallelThreshold = 64

// Counts aggregates results per confidence tier.
type Counts struct {
	Exact  int `json:"exact"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	None   int `json:"none"`
}

// Total returns the sum across all tiers. It always equals the number of
// processed rows.
func (c Counts) Total() int {
	return c.Exact + c.High + c.Medium + c.Low + c.None
}

// ByTier returns the counts keyed by tier name, for telemetry attributes.
func (c Counts) ByTier() map[string]int {
	return map[string]int{
		string(ConfidenceExact):  c.Exact,
		string(ConfidenceHigh):   c.High,
		string(ConfidenceMedium): c.Medium,
		string(ConfidenceLow):    c.Low,
		string(ConfidenceNone):   c.None,
	}
}

// Report aggregates every MatchResult for one import batch. Results and
// Review preserve input order so a UI can correlate back to CSV lines.
type Report struct {
	TotalProcessed int           `json:"totalProcessed"`
	Counts         Counts        `json:"counts"`
	Results        []MatchResult `json:"results"`
	// Review lists the medium/low/none results that require a human decision.
	Review []MatchResult `json:"review"`
}

// Runner executes one import batch against a shared read-only index. Rows are
// independent of each other, so batches can fan out across workers without
// locking.
type Runner struct {
	workers int
}

// NewRunner constructs a Runner. A worker count below 2 means serial
// processing.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers}
}

// Reconcile matches every row, in input order, and reduces the outcomes into
// a Report. Individual rows never fail the batch; a malformed row simply
// resolves to the none tier.
func (r *Runner) Reconcile(rows []imports.Row, index *Index) (*Report, error) {
	if index == nil {
		return nil, ErrNilIndex
	}

	results := make([]MatchResult, len(rows))
	if r.workers > 1 && len(rows) >= parallelThreshold {
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i := range rows {
			i := i
			g.Go(func() error {
				results[i] = Match(rows[i], index)
				return nil
			})
		}
		// Workers never return errors; Wait is just the join point.
		_ = g.Wait()
	} else {
		for i := range rows {
			results[i] = Match(rows[i], index)
		}
	}

	return buildReport(results), nil
}

func buildReport(results []MatchResult) *Report {
	report := &Report{
		TotalProcessed: len(results),
		Results:        results,
		Review:         []MatchResult{},
	}
	for _, res := range results {
		switch res.Confidence {
		case ConfidenceExact:
			report.Counts.Exact++
		case ConfidenceHigh:
			report.Counts.High++
		case ConfidenceMedium:
			report.Counts.Medium++
		case ConfidenceLow:
			report.Counts.Low++
		default:
			report.Counts.None++
		}
		if res.Confidence.NeedsReview() {
			report.Review = append(report.Review, res)
		}
	}
	return report
}
