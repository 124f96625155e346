// Package similarity compares resume text with job descriptions or keyword bags.
package similarity

import (
	"errors"
	"fmt"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ErrEmptyVocabulary is returned when either document has no content terms
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// Mode selects the similarity strategy
type Mode string

// Supported modes
const (
	ModeTFIDF  Mode = "tfidf"
	ModeSimple Mode = "simple"
)

// Comparison is the raw outcome of comparing resume text with a target document.
// Percentages are in [0,100].
type Comparison struct {
	Cosine float64
	// WeightedMatch is the share of target term weight present in the resume
	WeightedMatch float64
	// CountMatch is the share of distinct target terms present in the resume
	CountMatch float64
	Matched    []string
	Missing    []types.WeightedKeyword
	// Weights maps each distinct target term to its importance
	Weights    map[string]float64
	TotalTerms int
}

// Strategy compares two texts. Implementations are stateless and safe for concurrent use.
type Strategy interface {
	Method() types.Method
	Compare(resumeText, targetText string) (*Comparison, error)
}

// NewStrategy returns the strategy for mode
func NewStrategy(mode Mode, tokenizer *keywords.Tokenizer) (Strategy, error) {
	switch mode {
	case ModeTFIDF, "":
		return NewTFIDFStrategy(tokenizer), nil
	case ModeSimple:
		return NewSimpleStrategy(tokenizer), nil
	default:
		return nil, fmt.Errorf("unknown similarity mode %q", mode)
	}
}
