package reconcile

// Confidence grades how trustworthy a row-to-player match is. Tiers are
// ordered by trustworthiness: exact > high > medium > low > none.
type Confidence string

const (
	// ConfidenceExact means a single candidate matched the row name exactly.
	ConfidenceExact Confidence = "exact"
	// ConfidenceHigh means a single candidate matched on a partial name signal.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means multiple candidates matched; the best guess is
	// surfaced but never auto-committed.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means candidates existed for the row's team and position
	// but none matched by name.
	ConfidenceLow Confidence = "low"
	// ConfidenceNone means no candidate could be linked at all.
	ConfidenceNone Confidence = "none"
)

// AutoApply reports whether the tier is safe to write without human review.
func (c Confidence) AutoApply() bool {
	return c == ConfidenceExact || c == ConfidenceHigh
}

// NeedsReview reports whether a human must resolve the row before any write.
func (c Confidence) NeedsReview() bool {
	return c == ConfidenceMedium || c == ConfidenceLow || c == ConfidenceNone
}
