package similarity

import "math"

// Tuning constants for the match curves
const (
	// CosineBoost is the multiplicative lift applied to any non-zero cosine similarity
	CosineBoost = 1.05
	// WeightedShare is the share of the weighted match in the blended keyword match
	WeightedShare = 0.6
	// CountShare is the share of the count ratio in the blended keyword match
	CountShare = 0.4
	// MaxMissingKeywords caps the weighted missing-keyword list
	MaxMissingKeywords = 40
)

// matchCountSteps are cumulative bonuses for absolute match counts, largest first
var matchCountSteps = []struct {
	above int
	bonus float64
}{
	{20, 0.5},
	{15, 1.0},
	{10, 1.5},
	{5, 2.0},
}

// CosineToScore converts a cosine similarity in [0,1] to a 0–100 score.
func CosineToScore(cosine float64) float64 {
	if cosine <= 0 {
		return 0
	}
	return math.Min(100, cosine*100*CosineBoost)
}

// BlendMatch mixes the weighted and count match percentages.
func BlendMatch(weighted, count float64) float64 {
	return WeightedShare*weighted + CountShare*count
}

// MatchCountBonus rewards higher absolute match counts with shrinking steps:
// more than 5 matches earns 2, more than 10 earns 3.5, more than 15 earns 4.5
// and more than 20 earns the 5 point maximum.
func MatchCountBonus(matches int) float64 {
	bonus := 0.0
	for _, step := range matchCountSteps {
		if matches > step.above {
			bonus += step.bonus
		}
	}
	return bonus
}

// KeywordMatchPercentage combines the blend and the count bonus, capped at 100.
func KeywordMatchPercentage(weighted, count float64, matches int) float64 {
	return math.Min(100, BlendMatch(weighted, count)+MatchCountBonus(matches))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
