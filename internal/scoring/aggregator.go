// Package scoring merges analyzer outputs into one bounded resume score.
package scoring

import (
	"github.com/jonathan/ats-scorer/internal/types"
)

// Components are the analyzer outputs for one resume. Match is nil when the request
// has no job description or keyword set.
type Components struct {
	Structure      *types.StructureReport
	Quality        *types.QualityReport
	Formatting     *types.FormattingReport
	ResumeKeywords *types.KeywordSet
	Match          *types.TFIDFResult
	// Sections counts sections holding at least one visible bullet
	Sections   int
	HasContact bool
	Empty      bool
}

// Aggregator combines components with the comprehensive or industry-standard strategy.
// It is stateless and safe for concurrent use.
type Aggregator struct{}

// NewAggregator creates an aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate picks the strategy and returns the breakdown; Overall holds the final score.
// An explicit strategy wins; otherwise job-targeted requests use the industry standard.
func (a *Aggregator) Aggregate(c Components, strategy types.Strategy) (types.Method, types.ScoreBreakdown) {
	useIndustry := c.Match != nil
	switch strategy {
	case types.StrategyComprehensive:
		useIndustry = false
	case types.StrategyIndustryStandard:
		useIndustry = c.Match != nil
	}
	if useIndustry {
		return a.IndustryStandard(c)
	}
	return types.MethodComprehensive, a.Comprehensive(c)
}

// Comprehensive scores a resume on its own merits: structure, keyword richness,
// content quality and formatting, with a floor that protects non-empty resumes.
func (a *Aggregator) Comprehensive(c Components) types.ScoreBreakdown {
	b := base(c, ComprehensiveWeights)
	if c.Empty {
		return b
	}

	tech, ats, soft := 0, 0, 0
	if c.ResumeKeywords != nil {
		tech = len(c.ResumeKeywords.Technical)
		ats = len(c.ResumeKeywords.ATSFocused)
		soft = len(c.ResumeKeywords.SoftSkills)
	}
	b.Keyword = Round1(KeywordRichness(tech, ats, soft))
	b.Bonus = AlignmentBonus(tech)
	b.Floor = ProtectiveFloor(c.Sections, c.HasContact)

	w := ComprehensiveWeights
	raw := w.Structure*b.Structure + w.KeywordMatch*b.Keyword + w.Quality*b.Quality + w.Formatting*b.Formatting + b.Bonus
	if raw < b.Floor {
		raw = b.Floor
	}
	b.Overall = FinalScore(raw)
	return b
}

// IndustryStandard scores a resume against a job target, led by keyword match.
func (a *Aggregator) IndustryStandard(c Components) (types.Method, types.ScoreBreakdown) {
	method := types.MethodIndustryStandard
	if c.Match != nil && c.Match.Method == types.MethodSimpleKeyword {
		method = types.MethodSimpleKeyword
	}

	km, tf := 0.0, 0.0
	if c.Match != nil {
		km = c.Match.KeywordMatchPercentage
		tf = c.Match.TFIDFScore
	}
	w := IndustryWeights(km)
	b := base(c, w)
	if c.Empty {
		return method, b
	}

	b.Keyword = Round1(km)
	b.KeywordMatchPercentage = km
	b.TFIDF = Round1(tf)
	b.Bonus = SynergyBonus(km, tf)

	raw := w.KeywordMatch*km + w.TFIDF*tf + w.Structure*b.Structure + w.Quality*b.Quality + w.Formatting*b.Formatting + b.Bonus
	b.Overall = FinalScore(raw)
	return method, b
}

// ApplySemantic folds a raw semantic delta into the breakdown's overall score.
// Callers skip it for empty resumes, which always score 0.
func ApplySemantic(b *types.ScoreBreakdown, delta float64) {
	adj := SemanticAdjustment(delta)
	b.SemanticAdjustment = Round1(adj)
	b.Overall = FinalScore(b.Overall + adj)
}

func base(c Components, w Weights) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		Weights:          w.Map(),
		StructureReport:  c.Structure,
		QualityReport:    c.Quality,
		FormattingReport: c.Formatting,
		Match:            c.Match,
		ResumeKeywords:   c.ResumeKeywords,
	}
	if c.Empty {
		return b
	}
	if c.Structure != nil {
		b.Structure = c.Structure.Score
	}
	if c.Quality != nil {
		b.Quality = c.Quality.Score
	}
	if c.Formatting != nil {
		b.Formatting = c.Formatting.Score
	}
	return b
}
