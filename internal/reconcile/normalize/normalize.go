// Package normalize canonicalizes free-text identity fields before matching.
// All functions are pure and total: malformed input normalizes to an empty
// string, which can never equal a real player field.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name lowercases, trims, collapses internal whitespace, and strips
// punctuation and diacritics so "T.J. Hockenson" and "TJ Hockenson" compare
// equal. Commas are dropped too, which turns "Last, First" exports into plain
// token sequences.
func Name(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}
	if ascii, _, err := transform.String(stripAccents, lowered); err == nil {
		lowered = ascii
	}

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSpace := false
	for _, r := range lowered {
		switch {
		case r == '.' || r == ',' || r == '\'' || r == '’':
			// dropped entirely, no token boundary
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				pendingSpace = true
			}
		default:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Team uppercases and trims a team code. There is no alias table: an
// unrecognized code passes through unchanged and simply matches nothing.
func Team(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Position uppercases and trims a position code. DEF and D/ST fold into the
// canonical DST code.
func Position(raw string) string {
	p := strings.ToUpper(strings.TrimSpace(raw))
	switch p {
	case "DEF", "D/ST":
		return "DST"
	}
	return p
}
