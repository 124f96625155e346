// Package quality scores the writing of resume bullets: quantified achievements,
// strong action verbs, vague phrasing and buzzwords.
package quality

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/taxonomy"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Scoring constants
const (
	BaseScore          = 50.0
	AchievementScale   = 10.0
	MaxAchievementGain = 25.0
	VerbScale          = 8.0
	MaxVerbGain        = 20.0
	VaguePenalty       = 3.0
	MaxVaguePenalty    = 15.0
	BuzzwordPenalty    = 2.0
	MaxBuzzwordPenalty = 10.0
	// BuzzwordAllowance is how many buzzwords pass without penalty
	BuzzwordAllowance = 3
)

var (
	quantityPattern = regexp.MustCompile(`[$€£]?\d[\d,]*(?:\.\d+)?\s?%?`)
	yearPattern     = regexp.MustCompile(`^(?:19|20)\d{2}$`)
)

// Analyzer scores content quality
type Analyzer struct {
	strongVerbs []keywords.Phrase
	vague       []keywords.Phrase
	buzzwords   []keywords.Phrase
}

// NewAnalyzer compiles the taxonomy's verb, vague-phrase and buzzword tables
func NewAnalyzer(tax *taxonomy.Taxonomy) *Analyzer {
	return &Analyzer{
		strongVerbs: keywords.NewPhrases(tax.StrongVerbs()),
		vague:       keywords.NewPhrases(tax.VaguePhrases()),
		buzzwords:   keywords.NewPhrases(tax.Buzzwords()),
	}
}

// Analyze scores the resume's summary and visible bullets.
func (a *Analyzer) Analyze(doc *types.ResumeDocument) *types.QualityReport {
	return a.AnalyzeText(resume.BodyText(doc))
}

// AnalyzeText scores free text. Blank text scores 0.
func (a *Analyzer) AnalyzeText(text string) *types.QualityReport {
	report := &types.QualityReport{
		FoundVerbs:     []string{},
		FoundVague:     []string{},
		FoundBuzzwords: []string{},
		Issues:         []string{},
	}
	if strings.TrimSpace(text) == "" {
		report.Issues = append(report.Issues, "No content to analyze")
		return report
	}

	normalized := keywords.Normalize(text)
	report.QuantifiedAchievements = CountQuantities(text)
	report.StrongVerbs, report.FoundVerbs = countPhrases(normalized, a.strongVerbs)
	report.VagueTerms, report.FoundVague = countPhrases(normalized, a.vague)
	report.Buzzwords, report.FoundBuzzwords = countPhrases(normalized, a.buzzwords)

	if report.QuantifiedAchievements == 0 {
		report.Issues = append(report.Issues, "No quantified achievements")
	}
	if report.StrongVerbs == 0 {
		report.Issues = append(report.Issues, "No strong action verbs")
	}
	if report.VagueTerms > 0 {
		report.Issues = append(report.Issues, "Vague language: "+strings.Join(report.FoundVague, ", "))
	}
	if report.Buzzwords > BuzzwordAllowance {
		report.Issues = append(report.Issues, "Too many buzzwords: "+strings.Join(report.FoundBuzzwords, ", "))
	}

	report.Score = Score(report.QuantifiedAchievements, report.StrongVerbs, report.VagueTerms, report.Buzzwords)
	return report
}

// Score combines the counts with logarithmic gains and capped linear penalties.
func Score(achievements, strongVerbs, vague, buzzwords int) float64 {
	score := BaseScore +
		math.Min(MaxAchievementGain, AchievementScale*math.Log1p(float64(achievements))) +
		math.Min(MaxVerbGain, VerbScale*math.Log1p(float64(strongVerbs))) -
		math.Min(MaxVaguePenalty, VaguePenalty*float64(vague)) -
		math.Min(MaxBuzzwordPenalty, BuzzwordPenalty*float64(max(0, buzzwords-BuzzwordAllowance)))
	return math.Round(math.Max(0, math.Min(100, score))*10) / 10
}

// CountQuantities counts numbers, money amounts and percentages, ignoring calendar years.
func CountQuantities(text string) int {
	n := 0
	for _, m := range quantityPattern.FindAllString(text, -1) {
		if yearPattern.MatchString(strings.TrimSpace(m)) {
			continue
		}
		n++
	}
	return n
}

// countPhrases returns the total occurrences and the distinct phrases found, sorted
func countPhrases(normalized string, phrases []keywords.Phrase) (int, []string) {
	total := 0
	found := []string{}
	for _, p := range phrases {
		if c := p.Count(normalized); c > 0 {
			total += c
			found = append(found, p.Key)
		}
	}
	sort.Strings(found)
	return total, found
}
