// Package taxonomy provides the immutable keyword tables the scoring engine matches against.
// A Taxonomy is built once and shared read-only across concurrent scoring requests.
package taxonomy

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/spf13/viper"
)

// Taxonomy is a versioned, read-only set of keyword tables.
// Accessors return copies; the zero value is not usable, use Default or Load.
type Taxonomy struct {
	version         string
	technical       []string
	aliases         map[string]string
	softSkills      []string
	atsActionVerbs  []string
	atsMetrics      []string
	industry        []string
	stopWords       map[string]struct{}
	strongVerbs     []string
	vaguePhrases    []string
	buzzwords       []string
	sectionTitles   map[types.SectionKind]*regexp.Regexp
	sectionEvidence map[types.SectionKind][]string
	canonicalOrder  []types.SectionKind
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the built-in taxonomy. It is constructed once per process.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTax = build(Version, tables{
			Technical:      technicalTerms,
			Aliases:        technicalAliases,
			SoftSkills:     softSkills,
			ATSActionVerbs: atsActionVerbs,
			ATSMetrics:     atsMetricTerms,
			Industry:       industryTerms,
			StopWords:      stopWords,
			StrongVerbs:    strongVerbs,
			VaguePhrases:   vaguePhrases,
			Buzzwords:      buzzwords,
		})
	})
	return defaultTax
}

// tables is the on-disk shape of a taxonomy override file
type tables struct {
	Version        string            `mapstructure:"version"`
	Technical      []string          `mapstructure:"technical"`
	Aliases        map[string]string `mapstructure:"technical_aliases"`
	SoftSkills     []string          `mapstructure:"soft_skills"`
	ATSActionVerbs []string          `mapstructure:"ats_action_verbs"`
	ATSMetrics     []string          `mapstructure:"ats_metrics"`
	Industry       []string          `mapstructure:"industry"`
	StopWords      []string          `mapstructure:"stop_words"`
	StrongVerbs    []string          `mapstructure:"strong_verbs"`
	VaguePhrases   []string          `mapstructure:"vague_phrases"`
	Buzzwords      []string          `mapstructure:"buzzwords"`
}

// Load reads a YAML or JSON override file. Tables present in the file replace the
// built-in ones; absent tables keep the defaults.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return nil, &LoadError{Message: "taxonomy path is empty"}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read taxonomy file %s", path), Cause: err}
	}

	var t tables
	if err := v.Unmarshal(&t); err != nil {
		return nil, &LoadError{Message: "failed to decode taxonomy file", Cause: err}
	}
	if strings.TrimSpace(t.Version) == "" {
		return nil, &LoadError{Message: "taxonomy file must declare a version"}
	}

	base := Default()
	merged := tables{
		Technical:      pick(t.Technical, base.technical),
		SoftSkills:     pick(t.SoftSkills, base.softSkills),
		ATSActionVerbs: pick(t.ATSActionVerbs, base.atsActionVerbs),
		ATSMetrics:     pick(t.ATSMetrics, base.atsMetrics),
		Industry:       pick(t.Industry, base.industry),
		StopWords:      pick(t.StopWords, base.StopWords()),
		StrongVerbs:    pick(t.StrongVerbs, base.strongVerbs),
		VaguePhrases:   pick(t.VaguePhrases, base.vaguePhrases),
		Buzzwords:      pick(t.Buzzwords, base.buzzwords),
		Aliases:        base.aliases,
	}
	if len(t.Aliases) > 0 {
		merged.Aliases = t.Aliases
	}

	return build(t.Version, merged), nil
}

func pick(override, fallback []string) []string {
	if len(override) > 0 {
		return override
	}
	return fallback
}

func build(version string, t tables) *Taxonomy {
	tax := &Taxonomy{
		version:         version,
		technical:       dedupe(t.Technical, false),
		aliases:         make(map[string]string, len(t.Aliases)),
		softSkills:      dedupe(t.SoftSkills, true),
		atsActionVerbs:  dedupe(t.ATSActionVerbs, true),
		atsMetrics:      dedupe(t.ATSMetrics, true),
		industry:        dedupe(t.Industry, true),
		stopWords:       make(map[string]struct{}, len(t.StopWords)),
		strongVerbs:     dedupe(t.StrongVerbs, true),
		vaguePhrases:    dedupe(t.VaguePhrases, true),
		buzzwords:       dedupe(t.Buzzwords, true),
		sectionTitles:   make(map[types.SectionKind]*regexp.Regexp, len(sectionTitleKeywords)),
		sectionEvidence: sectionEvidence,
		canonicalOrder:  canonicalOrder,
	}
	for alias, canonical := range t.Aliases {
		tax.aliases[strings.ToLower(strings.TrimSpace(alias))] = canonical
	}
	for _, w := range t.StopWords {
		tax.stopWords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for kind, words := range sectionTitleKeywords {
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		tax.sectionTitles[kind] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return tax
}

// dedupe drops blanks and case-insensitive duplicates, keeping first-seen order
func dedupe(in []string, lower bool) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if lower {
			s = key
		}
		out = append(out, s)
	}
	return out
}

// Version returns the table version
func (t *Taxonomy) Version() string { return t.version }

// Technical returns the technical terms in display casing.
func (t *Taxonomy) Technical() []string { return clone(t.technical) }

// Aliases returns the lower-case alias → canonical technical term map.
func (t *Taxonomy) Aliases() map[string]string {
	out := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		out[k] = v
	}
	return out
}

// SoftSkills returns the soft-skill phrases.
func (t *Taxonomy) SoftSkills() []string { return clone(t.softSkills) }

// ATSPhrases returns action verbs, metric terms and industry terms, in that order.
func (t *Taxonomy) ATSPhrases() []string {
	out := make([]string, 0, len(t.atsActionVerbs)+len(t.atsMetrics)+len(t.industry))
	out = append(out, t.atsActionVerbs...)
	out = append(out, t.atsMetrics...)
	out = append(out, t.industry...)
	return dedupe(out, true)
}

// StrongVerbs returns the curated strong action verbs.
func (t *Taxonomy) StrongVerbs() []string { return clone(t.strongVerbs) }

// VaguePhrases returns phrases that weaken a bullet.
func (t *Taxonomy) VaguePhrases() []string { return clone(t.vaguePhrases) }

// Buzzwords returns overused filler terms.
func (t *Taxonomy) Buzzwords() []string { return clone(t.buzzwords) }

// StopWords returns the stop-word list in no particular order.
func (t *Taxonomy) StopWords() []string {
	out := make([]string, 0, len(t.stopWords))
	for w := range t.stopWords {
		out = append(out, w)
	}
	return out
}

// IsStopWord reports whether the lower-case token is a stop word
func (t *Taxonomy) IsStopWord(token string) bool {
	_, ok := t.stopWords[token]
	return ok
}

// CanonicalOrder returns the ATS-friendly section order.
func (t *Taxonomy) CanonicalOrder() []types.SectionKind {
	out := make([]types.SectionKind, len(t.canonicalOrder))
	copy(out, t.canonicalOrder)
	return out
}

// SectionEvidence returns full-text phrases that reveal a section kind without a title.
func (t *Taxonomy) SectionEvidence(kind types.SectionKind) []string {
	return clone(t.sectionEvidence[kind])
}

// ClassifySection derives a section's kind from its title. It is the only place
// section kinds are decided so every analyzer sees the same classification.
func (t *Taxonomy) ClassifySection(title string) types.SectionKind {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return types.SectionOther
	}
	for _, kind := range sectionClassifyOrder {
		if re, ok := t.sectionTitles[kind]; ok && re.MatchString(lower) {
			return kind
		}
	}
	return types.SectionOther
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
