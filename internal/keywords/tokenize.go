package keywords

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/taxonomy"
)

var (
	tokenPattern    = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}+#./'\-]*`)
	fragmentBreak   = regexp.MustCompile(`[,;:!?()\[\]{}"|\n\t•·*]+|\.(?:\s+|$)`)
	numericPattern  = regexp.MustCompile(`^\d[\d.,/\-]*(?:k|m|b|x|s|th|st|nd|rd)?$`)
	trailingTrimSet = ".-/'"
)

// Tokenizer splits normalized text into runs of content tokens.
// It is immutable after construction and safe for concurrent use.
type Tokenizer struct {
	tax *taxonomy.Taxonomy
	// compound holds normalized technical terms and aliases that contain a slash
	compound map[string]bool
}

// NewTokenizer creates a tokenizer using the taxonomy's stop words and compound terms
func NewTokenizer(tax *taxonomy.Taxonomy) *Tokenizer {
	compound := make(map[string]bool)
	for _, term := range tax.Technical() {
		if key := Normalize(term); strings.Contains(key, "/") {
			compound[key] = true
		}
	}
	for alias := range tax.Aliases() {
		if key := Normalize(alias); strings.Contains(key, "/") {
			compound[key] = true
		}
	}
	return &Tokenizer{tax: tax, compound: compound}
}

// Runs normalizes text and returns runs of consecutive content tokens. Punctuation,
// sentence ends, stop words and numbers break a run, so only tokens within one run
// are adjacent for bigram purposes.
func (t *Tokenizer) Runs(text string) [][]string {
	normalized := Normalize(text)
	var runs [][]string
	for _, fragment := range fragmentBreak.Split(normalized, -1) {
		var run []string
		for _, tok := range t.rawTokens(fragment) {
			if !t.keep(tok) {
				if len(run) > 0 {
					runs = append(runs, run)
					run = nil
				}
				continue
			}
			run = append(run, tok)
		}
		if len(run) > 0 {
			runs = append(runs, run)
		}
	}
	return runs
}

// Tokens returns every content token of text in order.
func (t *Tokenizer) Tokens(text string) []string {
	var out []string
	for _, run := range t.Runs(text) {
		out = append(out, run...)
	}
	return out
}

// Terms returns unigrams followed by bigrams of adjacent content tokens
func (t *Tokenizer) Terms(text string) []string {
	runs := t.Runs(text)
	var unigrams, bigrams []string
	for _, run := range runs {
		unigrams = append(unigrams, run...)
		for i := 0; i+1 < len(run); i++ {
			bigrams = append(bigrams, run[i]+" "+run[i+1])
		}
	}
	return append(unigrams, bigrams...)
}

// AllTokens returns every token of normalized text, stop words included.
func (t *Tokenizer) AllTokens(normalized string) []string {
	return t.rawTokens(normalized)
}

func (t *Tokenizer) rawTokens(fragment string) []string {
	var out []string
	for _, tok := range tokenPattern.FindAllString(fragment, -1) {
		tok = cleanToken(tok)
		if tok == "" {
			continue
		}
		if strings.Contains(tok, "/") && !t.compound[tok] {
			for _, part := range strings.Split(tok, "/") {
				if part = cleanToken(part); part != "" {
					out = append(out, part)
				}
			}
			continue
		}
		out = append(out, tok)
	}
	return out
}

func cleanToken(tok string) string {
	tok = strings.TrimRight(tok, trailingTrimSet)
	tok = strings.TrimSuffix(tok, "'s")
	return strings.Trim(tok, trailingTrimSet)
}

func (t *Tokenizer) keep(tok string) bool {
	if len([]rune(tok)) < 2 {
		return false
	}
	if numericPattern.MatchString(tok) {
		return false
	}
	return !t.tax.IsStopWord(tok)
}
