package engine

import "fmt"

// Error represents a scoring failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("engine error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
