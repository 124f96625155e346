// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Strategy selects the aggregation strategy. Empty means automatic selection.
type Strategy string

// Strategies
const (
	StrategyAuto             Strategy = ""
	StrategyComprehensive    Strategy = "comprehensive"
	StrategyIndustryStandard Strategy = "industry_standard"
)

// ScoreRequest is the input of a scoring call
type ScoreRequest struct {
	Resume         *ResumeDocument `json:"resume" validate:"required"`
	JobDescription string          `json:"job_description,omitempty"`
	Keywords       *KeywordSet     `json:"keywords,omitempty"`
	Strategy       Strategy        `json:"strategy,omitempty" validate:"omitempty,oneof=comprehensive industry_standard"`
	// PreviousScore is accepted for compatibility and not used.
	PreviousScore *float64 `json:"previous_score,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// HasJobTarget reports whether the request carries a job description or an external keyword set
func (r *ScoreRequest) HasJobTarget() bool {
	return strings.TrimSpace(r.JobDescription) != "" || !r.Keywords.IsEmpty()
}
