// Package grapheme holds the cluster and cell-width helpers used by the raw
// buffer and the field renderer.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a cluster (or any string).
//
// Zero-width clusters are reported as width 1 so the cursor always has a cell
// to land on.
func Width(s string) int {
	w := runewidth.StringWidth(s)
	if w == 0 && s != "" {
		return 1
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsBreak reports whether cluster ends a word for word-wise movement: any
// whitespace or the ',' token delimiter.
func IsBreak(cluster string) bool {
	return cluster == "," || IsSpace(cluster)
}
