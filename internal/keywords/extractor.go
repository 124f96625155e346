package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// MaxGeneralKeywords caps the general bucket
	MaxGeneralKeywords = 20
	// MaxHighFrequencyKeywords caps the high-frequency list
	MaxHighFrequencyKeywords = 20
	// minGeneralLength is the shortest token kept as a general keyword
	minGeneralLength = 3
	// minSquashedLength guards the separator-insensitive pass against "c++" → "c"
	minSquashedLength = 4
)

// technicalTerm is a technical phrase plus the canonical display form it resolves to
type technicalTerm struct {
	phrase    Phrase
	canonical string
	squashed  string
}

// Extractor pulls categorized keyword sets out of free text. All phrase tables are
// compiled once in NewExtractor; an Extractor is safe for concurrent use.
type Extractor struct {
	tax       *taxonomy.Taxonomy
	tokenizer *Tokenizer
	technical []technicalTerm
	order     map[string]int
	soft      []Phrase
	ats       []Phrase
}

// NewExtractor compiles the taxonomy's tables into matchers
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	e := &Extractor{
		tax:       tax,
		tokenizer: NewTokenizer(tax),
		order:     make(map[string]int),
		soft:      NewPhrases(tax.SoftSkills()),
		ats:       NewPhrases(tax.ATSPhrases()),
	}
	for i, term := range tax.Technical() {
		e.order[term] = i
		e.technical = append(e.technical, newTechnicalTerm(term, term))
	}
	aliases := tax.Aliases()
	aliasKeys := make([]string, 0, len(aliases))
	for alias := range aliases {
		aliasKeys = append(aliasKeys, alias)
	}
	sort.Strings(aliasKeys)
	for _, alias := range aliasKeys {
		canonical := aliases[alias]
		if _, ok := e.order[canonical]; !ok {
			e.order[canonical] = len(e.order)
		}
		e.technical = append(e.technical, newTechnicalTerm(alias, canonical))
	}
	return e
}

func newTechnicalTerm(display, canonical string) technicalTerm {
	p := NewPhrase(display)
	t := technicalTerm{phrase: p, canonical: canonical}
	if isCompound(p.Key) || strings.Contains(p.Key, " ") {
		if sq := Squash(p.Key); len(sq) >= minSquashedLength {
			t.squashed = sq
		}
	}
	return t
}

// Tokenizer returns the tokenizer the extractor uses.
func (e *Extractor) Tokenizer() *Tokenizer {
	return e.tokenizer
}

// Taxonomy returns the tables the extractor was compiled from
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// Extract returns the categorized keywords of text. Empty input yields a set with
// empty buckets; extraction never fails.
func (e *Extractor) Extract(text string) *types.KeywordSet {
	set := types.NewKeywordSet()
	normalized := Normalize(text)
	if strings.TrimSpace(normalized) == "" {
		return set
	}

	taken := make(map[string]bool)
	set.Technical = e.technicalKeywords(normalized)
	for _, kw := range set.Technical {
		taken[strings.ToLower(kw)] = true
	}
	// aliases never resurface as general keywords
	for _, term := range e.technical {
		if term.phrase.In(normalized) {
			taken[term.phrase.Key] = true
		}
	}

	set.ATSFocused = e.phraseKeywords(normalized, e.ats, taken)
	for _, kw := range matchPatterns(normalized) {
		if !taken[kw] {
			taken[kw] = true
			set.ATSFocused = append(set.ATSFocused, kw)
		}
	}
	set.SoftSkills = e.phraseKeywords(normalized, e.soft, taken)

	runs := e.tokenizer.Runs(text)
	set.General = e.generalKeywords(runs, taken)
	set.HighFrequency = highFrequency(runs, MaxHighFrequencyKeywords)
	return set
}

// ExtractTechnical returns only the canonical technical terms of text.
func (e *Extractor) ExtractTechnical(text string) []string {
	normalized := Normalize(text)
	if strings.TrimSpace(normalized) == "" {
		return []string{}
	}
	return e.technicalKeywords(normalized)
}

func (e *Extractor) technicalKeywords(normalized string) []string {
	found := make(map[string]bool)
	var squashedTokens map[string]bool
	for _, term := range e.technical {
		if found[term.canonical] {
			continue
		}
		if term.phrase.In(normalized) {
			found[term.canonical] = true
			continue
		}
		if term.squashed == "" {
			continue
		}
		if squashedTokens == nil {
			squashedTokens = e.squashedTokens(normalized)
		}
		if squashedTokens[term.squashed] {
			found[term.canonical] = true
		}
	}

	out := make([]string, 0, len(found))
	for kw := range found {
		out = append(out, kw)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := e.order[out[i]], e.order[out[j]]
		if oi != oj {
			return oi < oj
		}
		return out[i] < out[j]
	})
	return out
}

// squashedTokens returns squashed single tokens and squashed adjacent pairs
func (e *Extractor) squashedTokens(normalized string) map[string]bool {
	out := make(map[string]bool)
	for _, fragment := range fragmentBreak.Split(normalized, -1) {
		toks := e.tokenizer.AllTokens(fragment)
		for i, tok := range toks {
			out[Squash(tok)] = true
			if i+1 < len(toks) {
				out[Squash(tok+toks[i+1])] = true
			}
		}
	}
	return out
}

func (e *Extractor) phraseKeywords(normalized string, phrases []Phrase, taken map[string]bool) []string {
	out := []string{}
	for _, p := range phrases {
		if taken[p.Key] || !p.In(normalized) {
			continue
		}
		taken[p.Key] = true
		out = append(out, p.Key)
	}
	return out
}

func (e *Extractor) generalKeywords(runs [][]string, taken map[string]bool) []string {
	counts := make(map[string]int)
	for _, run := range runs {
		for _, tok := range run {
			if len([]rune(tok)) < minGeneralLength || taken[tok] {
				continue
			}
			counts[tok]++
		}
	}
	ranked := rankByFrequency(counts, MaxGeneralKeywords)
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Keyword)
	}
	return out
}
