package similarity

import (
	"math"
	"sort"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/types"
)

// TFIDFStrategy fits a unigram+bigram TF-IDF model on the two-document corpus
// {resume, target} and compares the L2-normalized vectors.
type TFIDFStrategy struct {
	tokenizer *keywords.Tokenizer
}

// NewTFIDFStrategy creates the vector-space strategy
func NewTFIDFStrategy(tokenizer *keywords.Tokenizer) *TFIDFStrategy {
	return &TFIDFStrategy{tokenizer: tokenizer}
}

// Method implements Strategy
func (s *TFIDFStrategy) Method() types.Method { return types.MethodIndustryStandard }

// Compare implements Strategy. It returns ErrEmptyVocabulary when either side has no terms.
// Every sum runs over terms in sorted order so repeated calls give identical floats.
func (s *TFIDFStrategy) Compare(resumeText, targetText string) (*Comparison, error) {
	resumeTF := termFrequencies(s.tokenizer.Terms(resumeText))
	targetTF := termFrequencies(s.tokenizer.Terms(targetText))
	if len(resumeTF) == 0 || len(targetTF) == 0 {
		return nil, ErrEmptyVocabulary
	}

	const docs = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if resumeTF[term] > 0 {
			df++
		}
		if targetTF[term] > 0 {
			df++
		}
		return math.Log((1+docs)/(1+df)) + 1
	}

	resumeTerms := sortedTerms(resumeTF)
	targetTerms := sortedTerms(targetTF)
	resumeVec := normalizeVector(resumeTerms, weigh(resumeTF, idf))
	targetVec := normalizeVector(targetTerms, weigh(targetTF, idf))

	cmp := &Comparison{
		Weights:    targetVec,
		TotalTerms: len(targetVec),
	}
	cosine, totalWeight, matchedWeight := 0.0, 0.0, 0.0
	for _, term := range targetTerms {
		w := targetVec[term]
		cosine += w * resumeVec[term]
		totalWeight += w
		if resumeTF[term] > 0 {
			matchedWeight += w
			cmp.Matched = append(cmp.Matched, term)
			continue
		}
		cmp.Missing = append(cmp.Missing, types.WeightedKeyword{Keyword: term, Weight: w})
	}
	cmp.Cosine = clampUnit(cosine)
	if totalWeight > 0 {
		cmp.WeightedMatch = matchedWeight / totalWeight * 100
	}
	cmp.CountMatch = float64(len(cmp.Matched)) / float64(len(targetVec)) * 100

	sortByWeight(cmp.Matched, targetVec)
	sortWeighted(cmp.Missing)
	return cmp, nil
}

func termFrequencies(terms []string) map[string]float64 {
	tf := make(map[string]float64, len(terms))
	for _, t := range terms {
		tf[t]++
	}
	return tf
}

func sortedTerms(tf map[string]float64) []string {
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// weigh applies sublinear term frequency, 1+ln(tf), times idf. Repeating a term
// already present moves its weight logarithmically rather than linearly.
func weigh(tf map[string]float64, idf func(string) float64) map[string]float64 {
	out := make(map[string]float64, len(tf))
	for term, n := range tf {
		out[term] = (1 + math.Log(n)) * idf(term)
	}
	return out
}

func normalizeVector(terms []string, v map[string]float64) map[string]float64 {
	sum := 0.0
	for _, term := range terms {
		w := v[term]
		sum += w * w
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for term, w := range v {
		v[term] = w / norm
	}
	return v
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// sortByWeight orders terms by weight descending, then alphabetically
func sortByWeight(terms []string, weights map[string]float64) {
	sort.Slice(terms, func(i, j int) bool {
		wi, wj := weights[terms[i]], weights[terms[j]]
		if wi != wj {
			return wi > wj
		}
		return terms[i] < terms[j]
	})
}

func sortWeighted(kws []types.WeightedKeyword) {
	sort.Slice(kws, func(i, j int) bool {
		if kws[i].Weight != kws[j].Weight {
			return kws[i].Weight > kws[j].Weight
		}
		return kws[i].Keyword < kws[j].Keyword
	})
}
