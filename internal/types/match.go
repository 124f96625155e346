// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Method names the scoring path that produced a result
type Method string

// Scoring methods
const (
	MethodComprehensive    Method = "comprehensive"
	MethodIndustryStandard Method = "industry_standard_tfidf"
	MethodSimpleKeyword    Method = "simple_keyword_match"
)

// MatchResult is the outcome of comparing a resume against a job description
type MatchResult struct {
	SimilarityScore        float64  `json:"similarity_score"`
	TechnicalScore         float64  `json:"technical_score"`
	KeywordMatchPercentage float64  `json:"keyword_match_percentage"`
	MatchingKeywords       []string `json:"matching_keywords"`
	// MissingKeywords is ordered technical > ats > soft skill > general.
	MissingKeywords     []string `json:"missing_keywords"`
	TechnicalMatches    []string `json:"technical_matches"`
	TechnicalMissing    []string `json:"technical_missing"`
	TotalJobKeywords    int      `json:"total_job_keywords"`
	TotalResumeKeywords int      `json:"total_resume_keywords"`
	Method              Method   `json:"method"`
}

// WeightedKeyword is a job term with its TF-IDF importance
type WeightedKeyword struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
}

// TFIDFResult is the vector-space comparison of a resume with a job or keyword bag.
// The simple fallback fills the same shape with the TF-IDF fields zeroed.
type TFIDFResult struct {
	CosineSimilarity        float64           `json:"cosine_similarity"`
	TFIDFScore              float64           `json:"tfidf_score"`
	KeywordMatchPercentage  float64           `json:"keyword_match_percentage"`
	WeightedMatchPercentage float64           `json:"weighted_match_percentage"`
	CountMatchPercentage    float64           `json:"count_match_percentage"`
	MatchBonus              float64           `json:"match_bonus"`
	MatchingKeywords        []string          `json:"matching_keywords"`
	MissingKeywords         []WeightedKeyword `json:"missing_keywords"`
	TotalJobTerms           int               `json:"total_job_terms"`
	TotalMatched            int               `json:"total_matched"`
	Method                  Method            `json:"method"`
}
