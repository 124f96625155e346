// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority ranks how urgent an improvement is
type Priority string

// Priorities
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// ActionType is the kind of edit an improvement asks for
type ActionType string

// Action types
const (
	ActionAdd         ActionType = "add"
	ActionModify      ActionType = "modify"
	ActionRemove      ActionType = "remove"
	ActionRestructure ActionType = "restructure"
)

// Improvement is a single prioritized suggestion
type Improvement struct {
	Category           string     `json:"category"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Priority           Priority   `json:"priority"`
	ImpactScore        int        `json:"impact_score"`
	ActionType         ActionType `json:"action_type"`
	SpecificSuggestion string     `json:"specific_suggestion"`
	Example            string     `json:"example,omitempty"`
}
