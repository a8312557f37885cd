// Package scan implements the section extraction state machine: it
// consumes reading-ordered layout blocks across an ordered page set and
// emits one Section per occurrence of the target feature column.
package scan

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Config holds the tokens a column title must contain to open a section.
// This replaces the ambient module-level configuration of earlier tooling
// with an explicit value.
type Config struct {
	// Tokens are matched by case-insensitive, accent-insensitive
	// containment; all of them must appear.
	Tokens []string
}

// DefaultConfig targets the "TŐKE ÉS MUNKA" strike-report column of the
// Népszava corpus.
func DefaultConfig() Config {
	return Config{Tokens: []string{"tőke", "munka"}}
}

// Matches reports whether the text contains every configured token after
// case folding and accent stripping. OCR renders Hungarian diacritics
// unreliably, so "Töke és Munka" and "Toke es munka" both match.
func (c Config) Matches(text string) bool {
	if len(c.Tokens) == 0 || strings.TrimSpace(text) == "" {
		return false
	}
	folded := Fold(text)
	for _, token := range c.Tokens {
		if !strings.Contains(folded, Fold(token)) {
			return false
		}
	}
	return true
}

// foldTransformer decomposes to NFD and strips combining marks, so accented
// and bare vowels compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases text and strips diacritics for matching.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// collapseWhitespace trims text and collapses internal whitespace runs to
// single spaces. OCR output is full of stray newlines and double spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
