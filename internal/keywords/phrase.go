package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Phrase is a normalized term matched on word boundaries against normalized text.
// Boundaries are checked by hand because RE2 has no look-around, and counting
// occurrences with consuming boundary groups would miss adjacent repeats.
type Phrase struct {
	Key     string
	Display string
	// strictHyphen stops short terms such as "go" matching inside "go-to-market"
	strictHyphen bool
}

// NewPhrase builds a phrase from a display form
func NewPhrase(display string) Phrase {
	key := Normalize(strings.TrimSpace(display))
	return Phrase{Key: key, Display: display, strictHyphen: len(key) <= 2}
}

// NewPhrases builds phrases for every entry, skipping blanks
func NewPhrases(displays []string) []Phrase {
	out := make([]Phrase, 0, len(displays))
	for _, d := range displays {
		p := NewPhrase(d)
		if p.Key == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// In reports whether the phrase occurs in normalized text.
func (p Phrase) In(text string) bool {
	return p.scan(text, true) > 0
}

// Count returns the number of non-overlapping occurrences in normalized text.
func (p Phrase) Count(text string) int {
	return p.scan(text, false)
}

func (p Phrase) scan(text string, first bool) int {
	if p.Key == "" {
		return 0
	}
	n := 0
	for i := 0; i <= len(text)-len(p.Key); {
		j := strings.Index(text[i:], p.Key)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(p.Key)
		if leftBoundary(text, start) && rightBoundary(text, end, p.strictHyphen) {
			n++
			if first {
				return n
			}
			i = end
			continue
		}
		i = start + 1
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// leftBoundary agrees with the tokenizer: '.', '+' and '#' continue a token only
// after a word character, so "node.js" hides "js" while "#kubernetes" shows "kubernetes".
func leftBoundary(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, size := utf8.DecodeLastRuneInString(text[:start])
	if isWordRune(r) {
		return false
	}
	if r != '.' && r != '+' && r != '#' {
		return true
	}
	if start-size == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start-size])
	return !isWordRune(prev)
}

func rightBoundary(text string, end int, strictHyphen bool) bool {
	if end >= len(text) {
		return true
	}
	r, size := utf8.DecodeRuneInString(text[end:])
	if isWordRune(r) || r == '+' || r == '#' {
		return false
	}
	if r == '.' || (strictHyphen && r == '-') {
		if end+size >= len(text) {
			return true
		}
		next, _ := utf8.DecodeRuneInString(text[end+size:])
		return !isWordRune(next)
	}
	return true
}

// ContainsPhrase reports whether display (normalized) occurs in text on word boundaries.
// text is normalized here; callers matching many phrases should normalize once and use Phrase.
func ContainsPhrase(text, display string) bool {
	return NewPhrase(display).In(Normalize(text))
}
