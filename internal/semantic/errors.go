// Package semantic provides an optional LLM-backed adjustment of the keyword-based score.
package semantic

import "fmt"

// Error represents a failed semantic assessment. Callers treat it as a zero adjustment.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("semantic error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("semantic error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
