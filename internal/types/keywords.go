// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Importance is the tier assigned to a high-frequency keyword
type Importance string

// Importance tiers
const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// ImportanceForFrequency maps a raw occurrence count to its tier.
func ImportanceForFrequency(frequency int) Importance {
	switch {
	case frequency >= 3:
		return ImportanceHigh
	case frequency == 2:
		return ImportanceMedium
	default:
		return ImportanceLow
	}
}

// HighFrequencyKeyword is a unigram or bigram ranked by occurrence count
type HighFrequencyKeyword struct {
	Keyword    string     `json:"keyword"`
	Frequency  int        `json:"frequency"`
	Importance Importance `json:"importance"`
}

// KeywordSet holds the categorized keywords extracted from a single text.
// The four flat buckets never share a keyword (compared case-insensitively).
type KeywordSet struct {
	Technical     []string               `json:"technical_keywords"`
	General       []string               `json:"general_keywords"`
	SoftSkills    []string               `json:"soft_skills"`
	ATSFocused    []string               `json:"ats_keywords"`
	HighFrequency []HighFrequencyKeyword `json:"high_frequency_keywords"`
}

// NewKeywordSet returns a set with empty, non-nil buckets
func NewKeywordSet() *KeywordSet {
	return &KeywordSet{
		Technical:     []string{},
		General:       []string{},
		SoftSkills:    []string{},
		ATSFocused:    []string{},
		HighFrequency: []HighFrequencyKeyword{},
	}
}

// KeywordCategory names a flat bucket of a KeywordSet
type KeywordCategory string

// Keyword categories in matching priority order
const (
	CategoryTechnical KeywordCategory = "technical"
	CategoryATS       KeywordCategory = "ats"
	CategorySoftSkill KeywordCategory = "soft_skill"
	CategoryGeneral   KeywordCategory = "general"
)

// CategoryPriority lists the flat buckets from most to least actionable
var CategoryPriority = []KeywordCategory{CategoryTechnical, CategoryATS, CategorySoftSkill, CategoryGeneral}

// Bucket returns the keywords of one flat category.
func (k *KeywordSet) Bucket(c KeywordCategory) []string {
	if k == nil {
		return nil
	}
	switch c {
	case CategoryTechnical:
		return k.Technical
	case CategoryATS:
		return k.ATSFocused
	case CategorySoftSkill:
		return k.SoftSkills
	case CategoryGeneral:
		return k.General
	default:
		return nil
	}
}

// TotalKeywords counts the de-duplicated union of the flat buckets.
func (k *KeywordSet) TotalKeywords() int {
	return len(k.All())
}

// All returns every flat keyword in priority order, de-duplicated case-insensitively.
func (k *KeywordSet) All() []string {
	if k == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, c := range CategoryPriority {
		for _, kw := range k.Bucket(c) {
			key := strings.ToLower(strings.TrimSpace(kw))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, kw)
		}
	}
	return out
}

// IsEmpty reports whether no bucket holds a keyword
func (k *KeywordSet) IsEmpty() bool {
	return k == nil || (k.TotalKeywords() == 0 && len(k.HighFrequency) == 0)
}
