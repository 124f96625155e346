package taxonomy

import "fmt"

// LoadError represents a failure reading or decoding a taxonomy override file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
