// Package slug derives URL-safe identifiers from campaign and tag names.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts text to a URL-friendly slug: lowercase, accents stripped,
// punctuation removed, space runs collapsed to single hyphens.
func Make(text string) string {
	s := strings.ToLower(text)

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}

	s = strings.TrimSpace(b.String())
	s = strings.Join(strings.Fields(s), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// MakeUnique appends a numeric suffix until the slug is not in taken.
func MakeUnique(baseName string, taken map[string]bool) string {
	base := Make(baseName)
	s := base
	for counter := 1; taken[s]; counter++ {
		s = fmt.Sprintf("%s-%d", base, counter)
	}
	return s
}
