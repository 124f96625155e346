// Package keywords extracts categorized keyword sets from resume and job-description text.
package keywords

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctuationFolder = strings.NewReplacer(
	"‘", "'", "’", "'", "“", `"`, "”", `"`,
	"–", "-", "—", "-", "\u00a0", " ",
)

// Normalize lower-cases text and folds accents and typographic punctuation,
// so "Résumé" and "resume" compare equal.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// Transformers carry state, so every call builds its own chain.
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(punctuationFolder.Replace(folded))
}

// Squash removes every non-alphanumeric rune, so "Node.js", "node js" and "nodejs" collapse together.
func Squash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isCompound reports whether a normalized term carries separators other than spaces
func isCompound(term string) bool {
	for _, r := range term {
		if r != ' ' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
