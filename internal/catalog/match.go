package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold case-folds s and strips combining marks, so "AMÉLIE" matches "amelie".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// matchSamples returns samples whose title or overview contains query.
func matchSamples(query string) []Item {
	q := fold(query)
	return filterSamples(func(it Item) bool {
		return strings.Contains(fold(it.Title), q) || strings.Contains(fold(it.Overview), q)
	})
}
