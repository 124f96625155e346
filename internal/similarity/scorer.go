package similarity

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/types"
)

// bagRepeats is how often each bucket's keywords appear in a synthesized keyword bag
var bagRepeats = map[types.KeywordCategory]int{
	types.CategoryTechnical: 3,
	types.CategoryATS:       2,
	types.CategorySoftSkill: 2,
	types.CategoryGeneral:   1,
}

// maxHighFrequencyRepeats caps how often one high-frequency keyword is repeated in a bag
const maxHighFrequencyRepeats = 5

// Scorer matches resumes against job targets. The primary strategy is chosen once
// at construction; the simple strategy backs it up when vectorization fails.
type Scorer struct {
	primary   Strategy
	fallback  Strategy
	extractor *keywords.Extractor
	logger    *zap.Logger
}

// NewScorer creates a scorer for the given mode
func NewScorer(mode Mode, extractor *keywords.Extractor, logger *zap.Logger) (*Scorer, error) {
	if extractor == nil {
		return nil, fmt.Errorf("keyword extractor is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	primary, err := NewStrategy(mode, extractor.Tokenizer())
	if err != nil {
		return nil, err
	}
	return &Scorer{
		primary:   primary,
		fallback:  NewSimpleStrategy(extractor.Tokenizer()),
		extractor: extractor,
		logger:    logger,
	}, nil
}

// Method returns the method of the primary strategy.
func (s *Scorer) Method() types.Method {
	return s.primary.Method()
}

// Extractor returns the keyword extractor the scorer uses
func (s *Scorer) Extractor() *keywords.Extractor {
	return s.extractor
}

func (s *Scorer) compare(resumeText, targetText string) (*Comparison, types.Method) {
	cmp, err := s.primary.Compare(resumeText, targetText)
	if err == nil {
		return cmp, s.primary.Method()
	}
	s.logger.Debug("similarity strategy failed, using simple keyword match",
		zap.String("strategy", string(s.primary.Method())),
		zap.Error(err),
	)
	cmp, err = s.fallback.Compare(resumeText, targetText)
	if err != nil {
		return &Comparison{Weights: map[string]float64{}}, s.fallback.Method()
	}
	return cmp, s.fallback.Method()
}

// CosineScore compares resume text with job text, or with a keyword bag synthesized
// from kw when kw holds keywords. The result shape is identical for every method.
func (s *Scorer) CosineScore(resumeText, jobText string, kw *types.KeywordSet) *types.TFIDFResult {
	res := &types.TFIDFResult{
		MatchingKeywords: []string{},
		MissingKeywords:  []types.WeightedKeyword{},
		Method:           s.primary.Method(),
	}

	useSet := kw != nil && !kw.IsEmpty()
	target := jobText
	if useSet {
		target = KeywordBag(kw)
	}
	if strings.TrimSpace(target) == "" {
		return res
	}

	cmp, method := s.compare(resumeText, target)
	res.Method = method

	matched := cmp.Matched
	missing := roundWeights(cmp.Missing)
	count := cmp.CountMatch
	totalTerms := cmp.TotalTerms
	if useSet {
		direct, directMissing := directMatches(resumeText, kw, cmp.Weights)
		matched = union(direct, matched)
		missing = withoutMatched(directMissing, matched)
		all := kw.All()
		totalTerms = len(all)
		count = 0
		if len(all) > 0 {
			count = float64(len(direct)) / float64(len(all)) * 100
		}
	}

	res.CountMatchPercentage = round2(count)
	res.TotalMatched = len(matched)
	res.TotalJobTerms = totalTerms
	if method == types.MethodSimpleKeyword {
		res.KeywordMatchPercentage = round2(count)
	} else {
		res.CosineSimilarity = round4(cmp.Cosine)
		res.TFIDFScore = round2(CosineToScore(cmp.Cosine))
		res.WeightedMatchPercentage = round2(cmp.WeightedMatch)
		res.MatchBonus = MatchCountBonus(len(matched))
		res.KeywordMatchPercentage = round2(KeywordMatchPercentage(cmp.WeightedMatch, count, len(matched)))
	}

	if len(matched) > 0 {
		res.MatchingKeywords = matched
	}
	if len(missing) > MaxMissingKeywords {
		missing = missing[:MaxMissingKeywords]
	}
	if len(missing) > 0 {
		res.MissingKeywords = missing
	}
	return res
}

// CalculateSimilarity extracts keywords from both texts and partitions the job's
// keywords into matching and missing. A job keyword matches when the resume's own
// keyword set holds it or it appears in the resume text on word boundaries.
func (s *Scorer) CalculateSimilarity(jobText, resumeText string) *types.MatchResult {
	res := s.partition(s.extractor.Extract(jobText), resumeText)
	if strings.TrimSpace(jobText) == "" || strings.TrimSpace(resumeText) == "" {
		return res
	}
	res.SimilarityScore, res.Method = s.similarity(resumeText, jobText)
	return res
}

// MatchKeywordSet partitions an externally extracted job keyword set against the
// resume, scoring similarity against the set's keyword bag.
func (s *Scorer) MatchKeywordSet(job *types.KeywordSet, resumeText string) *types.MatchResult {
	if job == nil {
		job = types.NewKeywordSet()
	}
	res := s.partition(job, resumeText)
	bag := KeywordBag(job)
	if strings.TrimSpace(bag) == "" || strings.TrimSpace(resumeText) == "" {
		return res
	}
	res.SimilarityScore, res.Method = s.similarity(resumeText, bag)
	return res
}

func (s *Scorer) partition(jobSet *types.KeywordSet, resumeText string) *types.MatchResult {
	resumeSet := s.extractor.Extract(resumeText)

	res := &types.MatchResult{
		MatchingKeywords:    []string{},
		MissingKeywords:     []string{},
		TechnicalMatches:    []string{},
		TechnicalMissing:    []string{},
		TotalJobKeywords:    jobSet.TotalKeywords(),
		TotalResumeKeywords: resumeSet.TotalKeywords(),
		Method:              s.primary.Method(),
	}

	resumeKeys := make(map[string]bool)
	for _, kw := range resumeSet.All() {
		resumeKeys[strings.ToLower(kw)] = true
	}
	normalized := keywords.Normalize(resumeText)
	present := func(kw string) bool {
		return resumeKeys[strings.ToLower(kw)] || keywords.NewPhrase(kw).In(normalized)
	}

	seen := make(map[string]bool)
	for _, c := range types.CategoryPriority {
		for _, kw := range jobSet.Bucket(c) {
			key := strings.ToLower(strings.TrimSpace(kw))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			hit := present(kw)
			if hit {
				res.MatchingKeywords = append(res.MatchingKeywords, kw)
			} else {
				res.MissingKeywords = append(res.MissingKeywords, kw)
			}
			if c != types.CategoryTechnical {
				continue
			}
			if hit {
				res.TechnicalMatches = append(res.TechnicalMatches, kw)
			} else {
				res.TechnicalMissing = append(res.TechnicalMissing, kw)
			}
		}
	}

	if n := len(res.TechnicalMatches) + len(res.TechnicalMissing); n > 0 {
		res.TechnicalScore = round2(float64(len(res.TechnicalMatches)) / float64(n) * 100)
	}
	if n := len(res.MatchingKeywords) + len(res.MissingKeywords); n > 0 {
		res.KeywordMatchPercentage = round2(float64(len(res.MatchingKeywords)) / float64(n) * 100)
	}
	return res
}

func (s *Scorer) similarity(resumeText, targetText string) (float64, types.Method) {
	cmp, method := s.compare(resumeText, targetText)
	if method == types.MethodSimpleKeyword {
		return round2(cmp.CountMatch), method
	}
	return round2(CosineToScore(cmp.Cosine)), method
}

// KeywordBag renders a keyword set as a pseudo-document. Each occurrence sits on its
// own line so no bigram spans two keywords.
func KeywordBag(kw *types.KeywordSet) string {
	if kw == nil {
		return ""
	}
	var lines []string
	for _, c := range types.CategoryPriority {
		for _, k := range kw.Bucket(c) {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			for i := 0; i < bagRepeats[c]; i++ {
				lines = append(lines, k)
			}
		}
	}
	for _, hf := range kw.HighFrequency {
		n := hf.Frequency
		if n > maxHighFrequencyRepeats {
			n = maxHighFrequencyRepeats
		}
		for i := 0; i < n; i++ {
			lines = append(lines, hf.Keyword)
		}
	}
	return strings.Join(lines, "\n")
}

// directMatches checks every keyword of kw against the resume on word boundaries.
// Missing keywords carry their bag weight and keep bucket priority on ties.
func directMatches(resumeText string, kw *types.KeywordSet, weights map[string]float64) ([]string, []types.WeightedKeyword) {
	normalized := keywords.Normalize(resumeText)
	var matched []string
	var missing []types.WeightedKeyword
	for _, k := range kw.All() {
		p := keywords.NewPhrase(k)
		if p.In(normalized) {
			matched = append(matched, k)
			continue
		}
		missing = append(missing, types.WeightedKeyword{Keyword: k, Weight: round4(weights[p.Key])})
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Weight > missing[j].Weight
	})
	return matched, missing
}

// roundWeights copies kws with weights rounded to four places, re-sorted so ties
// created by rounding fall back to keyword order
func roundWeights(kws []types.WeightedKeyword) []types.WeightedKeyword {
	out := make([]types.WeightedKeyword, len(kws))
	for i, kw := range kws {
		out[i] = types.WeightedKeyword{Keyword: kw.Keyword, Weight: round4(kw.Weight)}
	}
	sortWeighted(out)
	return out
}

// withoutMatched drops missing keywords that matched on either side
func withoutMatched(missing []types.WeightedKeyword, matched []string) []types.WeightedKeyword {
	hit := make(map[string]bool, len(matched))
	for _, m := range matched {
		hit[keywords.Normalize(m)] = true
	}
	out := make([]types.WeightedKeyword, 0, len(missing))
	for _, kw := range missing {
		if hit[keywords.Normalize(kw.Keyword)] {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// union appends b to a, skipping case-insensitive duplicates
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			key := strings.ToLower(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}
