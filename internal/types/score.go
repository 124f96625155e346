// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind is the category a section title is classified into
type SectionKind string

// Section kinds
const (
	SectionContact        SectionKind = "contact"
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionOther          SectionKind = "other"
)

// StructureReport is the output of the structure analyzer
type StructureReport struct {
	Score              float64       `json:"score"`
	Present            []SectionKind `json:"present_sections"`
	MissingRequired    []SectionKind `json:"missing_required"`
	MissingOptional    []SectionKind `json:"missing_optional"`
	OrderCorrect       bool          `json:"order_correct"`
	ClassifiedSections int           `json:"classified_sections"`
	IncompleteSections []string      `json:"incomplete_sections"`
	Issues             []string      `json:"issues"`
}

// QualityReport is the output of the content quality analyzer
type QualityReport struct {
	Score                  float64  `json:"score"`
	QuantifiedAchievements int      `json:"quantified_achievements"`
	StrongVerbs            int      `json:"strong_verbs"`
	VagueTerms             int      `json:"vague_terms"`
	Buzzwords              int      `json:"buzzwords"`
	FoundVerbs             []string `json:"found_verbs"`
	FoundVague             []string `json:"found_vague"`
	FoundBuzzwords         []string `json:"found_buzzwords"`
	Issues                 []string `json:"issues"`
}

// FormattingIssue identifies one ATS parseability problem
type FormattingIssue string

// Formatting issues
const (
	IssueSpecialCharacters FormattingIssue = "special_characters"
	IssueTableMarkup       FormattingIssue = "table_markup"
	IssueLongLines         FormattingIssue = "long_lines"
	IssueMissingEmail      FormattingIssue = "missing_email"
	IssueMissingPhone      FormattingIssue = "missing_phone"
	IssueBulletMarkers     FormattingIssue = "inconsistent_bullets"
)

// FormattingReport is the output of the formatting checker
type FormattingReport struct {
	Score                   float64           `json:"score"`
	Issues                  []FormattingIssue `json:"issues"`
	SpecialCharacterDensity float64           `json:"special_character_density"`
	LongestLine             int               `json:"longest_line"`
	Details                 []string          `json:"details"`
}

// HasIssue reports whether the checker flagged the given issue
func (r *FormattingReport) HasIssue(issue FormattingIssue) bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i == issue {
			return true
		}
	}
	return false
}

// ScoreBreakdown records every component score and the weights used to combine them
type ScoreBreakdown struct {
	Structure              float64            `json:"structure_score"`
	Keyword                float64            `json:"keyword_score"`
	TFIDF                  float64            `json:"tfidf_score"`
	Quality                float64            `json:"quality_score"`
	Formatting             float64            `json:"formatting_score"`
	KeywordMatchPercentage float64            `json:"keyword_match_percentage"`
	Weights                map[string]float64 `json:"weights"`
	Bonus                  float64            `json:"bonus"`
	Floor                  float64            `json:"floor"`
	SemanticAdjustment     float64            `json:"semantic_adjustment"`
	Overall                float64            `json:"overall_score"`

	StructureReport  *StructureReport  `json:"structure_analysis,omitempty"`
	QualityReport    *QualityReport    `json:"quality_analysis,omitempty"`
	FormattingReport *FormattingReport `json:"formatting_analysis,omitempty"`
	Match            *TFIDFResult      `json:"keyword_match,omitempty"`
	ResumeKeywords   *KeywordSet       `json:"resume_keywords,omitempty"`
}

// ScoreResult is the response of a scoring request
type ScoreResult struct {
	Success        bool           `json:"success"`
	Score          float64        `json:"score"`
	Method         Method         `json:"method"`
	Details        ScoreBreakdown `json:"details"`
	Suggestions    []string       `json:"suggestions"`
	AIImprovements []Improvement  `json:"ai_improvements"`
	Error          string         `json:"error,omitempty"`
}
