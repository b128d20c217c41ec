package tokens

import (
	"regexp"
	"strings"
)

const (
	// Delimiter separates tokens in raw text.
	Delimiter = ","
	// Separator is placed between tokens by Join.
	Separator = Delimiter + " "
)

var pendingRE = regexp.MustCompile(`,\s*$`)

// Parse returns the trimmed, non-empty pieces of raw in typed order.
//
// The result is never nil; empty input yields an empty slice.
func Parse(raw string) []string {
	out := make([]string, 0, strings.Count(raw, Delimiter)+1)
	for piece := range strings.SplitSeq(raw, Delimiter) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		out = append(out, piece)
	}
	return out
}

// Join renders ts in canonical form.
func Join(ts []string) string {
	return strings.Join(ts, Separator)
}

// PendingDelimiter reports whether raw ends in a delimiter followed by
// optional whitespace, i.e. the user is about to type another token.
func PendingDelimiter(raw string) bool {
	return pendingRE.MatchString(raw)
}

// Equal reports whether a and b hold the same tokens in the same order.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
