package listfield

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iw2rmb/tokenfield/internal/grapheme"
)

// DefaultLabel returns field with its first character upper-cased.
func DefaultLabel(field string) string {
	clusters := grapheme.Split(field)
	if len(clusters) == 0 {
		return ""
	}
	clusters[0] = cases.Upper(language.Und).String(clusters[0])
	return grapheme.Join(clusters)
}
