package scoring

import "math"

// Keyword richness curve coefficients
const (
	TechnicalRichness = 22.0
	ATSRichness       = 12.0
	SoftRichness      = 8.0
)

// Protective floor for non-empty resumes
const (
	FloorBase        = 20.0
	FloorPerSection  = 3.0
	MaxSectionFloor  = 15.0
	FloorContactLift = 10.0
)

// Semantic adjustment bounds
const (
	MaxSemanticDelta    = 15.0
	SemanticEffectShare = 0.3
)

// Synergy bonus thresholds
const (
	SynergyKeywordThreshold = 70.0
	SynergyTFIDFThreshold   = 50.0
	MaxSynergyBonus         = 5.0
)

// Industry weight interpolation range on keyword match percentage
const (
	interpolationStart = 85.0
	interpolationEnd   = 100.0
)

// Weights are the component weights of one aggregation. They always sum to 1.
type Weights struct {
	KeywordMatch float64
	TFIDF        float64
	Structure    float64
	Quality      float64
	Formatting   float64
}

// Map renders the weights for a ScoreBreakdown
func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		"keyword":    w.KeywordMatch,
		"tfidf":      w.TFIDF,
		"structure":  w.Structure,
		"quality":    w.Quality,
		"formatting": w.Formatting,
	}
}

var (
	// ComprehensiveWeights apply when there is no job target
	ComprehensiveWeights = Weights{KeywordMatch: 0.35, Structure: 0.25, Quality: 0.28, Formatting: 0.12}
	// IndustryBaseWeights apply to job-targeted scoring up to 85% keyword match
	IndustryBaseWeights = Weights{KeywordMatch: 0.50, TFIDF: 0.20, Structure: 0.12, Quality: 0.12, Formatting: 0.06}
	// IndustryHighMatchWeights apply at 100% keyword match
	IndustryHighMatchWeights = Weights{KeywordMatch: 0.60, TFIDF: 0.15, Structure: 0.10, Quality: 0.10, Formatting: 0.05}
)

// alignmentSteps reward breadth of technical keywords in comprehensive scoring
var alignmentSteps = []struct {
	atLeast int
	bonus   float64
}{
	{15, 3},
	{10, 2},
	{6, 1},
}

// KeywordRichness scores a resume's own keywords with logarithmic growth per bucket.
func KeywordRichness(technical, ats, soft int) float64 {
	v := TechnicalRichness*math.Log1p(float64(technical)) +
		ATSRichness*math.Log1p(float64(ats)) +
		SoftRichness*math.Log1p(float64(soft))
	return math.Min(100, v)
}

// AlignmentBonus is the comprehensive bonus for technical breadth.
func AlignmentBonus(technical int) float64 {
	for _, step := range alignmentSteps {
		if technical >= step.atLeast {
			return step.bonus
		}
	}
	return 0
}

// ProtectiveFloor is the lowest comprehensive score a non-empty resume can get
func ProtectiveFloor(sections int, hasContact bool) float64 {
	floor := FloorBase + math.Min(MaxSectionFloor, FloorPerSection*float64(sections))
	if hasContact {
		floor += FloorContactLift
	}
	return floor
}

// IndustryWeights interpolates linearly between the base and high-match weights as
// keyword match rises from 85 to 100, so the total never jumps at a threshold.
func IndustryWeights(keywordMatch float64) Weights {
	t := (keywordMatch - interpolationStart) / (interpolationEnd - interpolationStart)
	t = math.Max(0, math.Min(1, t))
	lerp := func(a, b float64) float64 { return a*(1-t) + b*t }
	base, high := IndustryBaseWeights, IndustryHighMatchWeights
	return Weights{
		KeywordMatch: lerp(base.KeywordMatch, high.KeywordMatch),
		TFIDF:        lerp(base.TFIDF, high.TFIDF),
		Structure:    lerp(base.Structure, high.Structure),
		Quality:      lerp(base.Quality, high.Quality),
		Formatting:   lerp(base.Formatting, high.Formatting),
	}
}

// SynergyBonus rewards resumes strong on both keyword match and TF-IDF similarity.
func SynergyBonus(keywordMatch, tfidf float64) float64 {
	if keywordMatch < SynergyKeywordThreshold || tfidf < SynergyTFIDFThreshold {
		return 0
	}
	b := 2.5*(keywordMatch-SynergyKeywordThreshold)/(100-SynergyKeywordThreshold) +
		2.5*(tfidf-SynergyTFIDFThreshold)/(100-SynergyTFIDFThreshold)
	return math.Min(MaxSynergyBonus, b)
}

// SemanticAdjustment bounds a raw semantic delta and scales it to its effective share.
func SemanticAdjustment(delta float64) float64 {
	return Clamp(delta, -MaxSemanticDelta, MaxSemanticDelta) * SemanticEffectShare
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FinalScore clamps to [0,100] and rounds to one decimal.
func FinalScore(v float64) float64 {
	return Round1(Clamp(v, 0, 100))
}
