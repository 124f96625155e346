package similarity

import (
	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/types"
)

// SimpleStrategy compares case-folded token sets. It never fails and leaves Cosine at zero.
type SimpleStrategy struct {
	tokenizer *keywords.Tokenizer
}

// NewSimpleStrategy creates the set-intersection strategy
func NewSimpleStrategy(tokenizer *keywords.Tokenizer) *SimpleStrategy {
	return &SimpleStrategy{tokenizer: tokenizer}
}

// Method implements Strategy
func (s *SimpleStrategy) Method() types.Method { return types.MethodSimpleKeyword }

// Compare implements Strategy
func (s *SimpleStrategy) Compare(resumeText, targetText string) (*Comparison, error) {
	resumeSet := tokenSet(s.tokenizer.Tokens(resumeText))
	targetSet := tokenSet(s.tokenizer.Tokens(targetText))

	cmp := &Comparison{
		Weights:    make(map[string]float64, len(targetSet)),
		Missing:    []types.WeightedKeyword{},
		TotalTerms: len(targetSet),
	}
	for term := range targetSet {
		cmp.Weights[term] = 1
		if resumeSet[term] {
			cmp.Matched = append(cmp.Matched, term)
			continue
		}
		cmp.Missing = append(cmp.Missing, types.WeightedKeyword{Keyword: term, Weight: 1})
	}
	if len(targetSet) > 0 {
		cmp.CountMatch = float64(len(cmp.Matched)) / float64(len(targetSet)) * 100
	}
	sortByWeight(cmp.Matched, cmp.Weights)
	sortWeighted(cmp.Missing)
	return cmp, nil
}

func tokenSet(tokens []string) map[string]bool {
	out := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		out[t] = true
	}
	return out
}
