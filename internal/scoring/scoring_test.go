package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func strongComponents() Components {
	kw := types.NewKeywordSet()
	kw.Technical = []string{"Go", "Python", "AWS", "Docker", "Kubernetes", "Terraform", "PostgreSQL", "Redis", "CI/CD", "Kafka"}
	kw.ATSFocused = []string{"managed", "increased", "reduced"}
	kw.SoftSkills = []string{"leadership"}
	return Components{
		Structure:      &types.StructureReport{Score: 100, OrderCorrect: true},
		Quality:        &types.QualityReport{Score: 80, QuantifiedAchievements: 4, StrongVerbs: 5},
		Formatting:     &types.FormattingReport{Score: 100},
		ResumeKeywords: kw,
		Sections:       3,
		HasContact:     true,
	}
}

func weightSum(w Weights) float64 {
	return w.KeywordMatch + w.TFIDF + w.Structure + w.Quality + w.Formatting
}

func TestCurves(t *testing.T) {
	assert.Equal(t, 0.0, KeywordRichness(0, 0, 0))
	assert.Equal(t, 100.0, KeywordRichness(100, 100, 100))
	assert.Less(t, KeywordRichness(2, 0, 0)-KeywordRichness(1, 0, 0), KeywordRichness(1, 0, 0))

	assert.Equal(t, 0.0, AlignmentBonus(5))
	assert.Equal(t, 1.0, AlignmentBonus(6))
	assert.Equal(t, 2.0, AlignmentBonus(10))
	assert.Equal(t, 3.0, AlignmentBonus(40))

	assert.Equal(t, 20.0, ProtectiveFloor(0, false))
	assert.Equal(t, 45.0, ProtectiveFloor(10, true))

	assert.Equal(t, 0.0, SynergyBonus(69, 100))
	assert.Equal(t, 0.0, SynergyBonus(100, 49))
	assert.InDelta(t, 2.5, SynergyBonus(85, 75), 1e-9)
	assert.Equal(t, 5.0, SynergyBonus(100, 100))

	assert.InDelta(t, 4.5, SemanticAdjustment(100), 1e-9)
	assert.InDelta(t, -4.5, SemanticAdjustment(-100), 1e-9)
	assert.InDelta(t, 3.0, SemanticAdjustment(10), 1e-9)

	assert.Equal(t, 100.0, FinalScore(123.4))
	assert.Equal(t, 0.0, FinalScore(-3))
	assert.Equal(t, 72.3, FinalScore(72.34))
}

func TestIndustryWeights(t *testing.T) {
	assert.Equal(t, IndustryBaseWeights, IndustryWeights(0))
	assert.Equal(t, IndustryBaseWeights, IndustryWeights(85))
	assert.Equal(t, IndustryHighMatchWeights, IndustryWeights(100))
	assert.InDelta(t, 0.55, IndustryWeights(92.5).KeywordMatch, 1e-9)

	for _, km := range []float64{0, 50, 85, 90, 95, 100} {
		assert.InDelta(t, 1.0, weightSum(IndustryWeights(km)), 1e-9, "km=%v", km)
	}
	assert.InDelta(t, 1.0, weightSum(ComprehensiveWeights), 1e-9)
}

func TestComprehensive(t *testing.T) {
	a := NewAggregator()
	c := strongComponents()

	b := a.Comprehensive(c)

	assert.Equal(t, 100.0, b.Structure)
	assert.Equal(t, 2.0, b.Bonus)
	assert.Greater(t, b.Overall, 70.0)
	assert.LessOrEqual(t, b.Overall, 100.0)
	assert.Equal(t, 0.35, b.Weights["keyword"])
}

func TestComprehensive_Floor(t *testing.T) {
	c := Components{
		Structure:      &types.StructureReport{},
		Quality:        &types.QualityReport{},
		Formatting:     &types.FormattingReport{},
		ResumeKeywords: types.NewKeywordSet(),
		Sections:       2,
		HasContact:     true,
	}

	b := NewAggregator().Comprehensive(c)

	assert.Equal(t, 36.0, b.Floor)
	assert.Equal(t, 36.0, b.Overall)
}

func TestComprehensive_Empty(t *testing.T) {
	c := strongComponents()
	c.Empty = true

	b := NewAggregator().Comprehensive(c)

	assert.Equal(t, 0.0, b.Overall)
	assert.Equal(t, 0.0, b.Structure)
}

func TestIndustryStandard_MonotonicInKeywordMatch(t *testing.T) {
	a := NewAggregator()
	c := strongComponents()
	c.Structure.Score = 70
	c.Quality.Score = 60
	c.Formatting.Score = 85

	for _, tf := range []float64{0, 45, 60, 100} {
		prev := -1.0
		for km := 0.0; km <= 100; km += 0.5 {
			c.Match = &types.TFIDFResult{KeywordMatchPercentage: km, TFIDFScore: tf, Method: types.MethodIndustryStandard}
			_, b := a.IndustryStandard(c)
			assert.GreaterOrEqual(t, b.Overall, prev, "tf=%v km=%v", tf, km)
			assert.GreaterOrEqual(t, b.Overall, 0.0)
			assert.LessOrEqual(t, b.Overall, 100.0)
			prev = b.Overall
		}
	}
}

func TestIndustryStandard_Method(t *testing.T) {
	a := NewAggregator()
	c := strongComponents()

	c.Match = &types.TFIDFResult{KeywordMatchPercentage: 40, Method: types.MethodSimpleKeyword}
	method, b := a.IndustryStandard(c)
	assert.Equal(t, types.MethodSimpleKeyword, method)
	assert.Equal(t, 0.0, b.TFIDF)

	c.Match = &types.TFIDFResult{KeywordMatchPercentage: 90, TFIDFScore: 80, Method: types.MethodIndustryStandard}
	method, b = a.IndustryStandard(c)
	assert.Equal(t, types.MethodIndustryStandard, method)
	assert.Equal(t, 90.0, b.KeywordMatchPercentage)
	assert.Greater(t, b.Bonus, 0.0)
}

func TestAggregate_StrategySelection(t *testing.T) {
	a := NewAggregator()
	c := strongComponents()

	method, _ := a.Aggregate(c, types.StrategyAuto)
	assert.Equal(t, types.MethodComprehensive, method)

	method, _ = a.Aggregate(c, types.StrategyIndustryStandard)
	assert.Equal(t, types.MethodComprehensive, method, "industry scoring needs a job target")

	c.Match = &types.TFIDFResult{KeywordMatchPercentage: 50, TFIDFScore: 40, Method: types.MethodIndustryStandard}
	method, _ = a.Aggregate(c, types.StrategyAuto)
	assert.Equal(t, types.MethodIndustryStandard, method)

	method, _ = a.Aggregate(c, types.StrategyComprehensive)
	assert.Equal(t, types.MethodComprehensive, method)
}

func TestApplySemantic(t *testing.T) {
	b := types.ScoreBreakdown{Overall: 99}
	ApplySemantic(&b, 15)
	assert.Equal(t, 100.0, b.Overall)
	assert.Equal(t, 4.5, b.SemanticAdjustment)

	b = types.ScoreBreakdown{Overall: 50}
	ApplySemantic(&b, -40)
	assert.Equal(t, 45.5, b.Overall)
}

func TestSuggestions(t *testing.T) {
	c := Components{
		Structure: &types.StructureReport{
			MissingRequired:    []types.SectionKind{types.SectionExperience, types.SectionEducation},
			IncompleteSections: []string{"Work"},
		},
		Quality: &types.QualityReport{VagueTerms: 1, FoundVague: []string{"responsible for"}, Buzzwords: 5, FoundBuzzwords: []string{"synergy"}},
		Formatting: &types.FormattingReport{Issues: []types.FormattingIssue{
			types.IssueTableMarkup, types.IssueLongLines, types.IssueMissingEmail, types.IssueMissingPhone,
		}},
		Match: &types.TFIDFResult{MissingKeywords: []types.WeightedKeyword{{Keyword: "kafka", Weight: 0.4}, {Keyword: "terraform", Weight: 0.3}}},
	}

	got := Suggestions(c)

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), MaxSuggestions)
	assert.Equal(t, "Add relevant job keywords where they honestly apply: kafka, terraform", got[0])
	assert.Contains(t, got, "Add a clearly titled experience section")
	assert.Contains(t, got, "Replace vague phrases: responsible for")

	empty := Suggestions(Components{Empty: true})
	assert.Len(t, empty, 1)
}
