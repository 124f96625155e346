package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBodyTooLarge indicates the request body exceeded the configured limit
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// ErrScoringFailed indicates the engine returned an unsuccessful result
type ErrScoringFailed struct {
	Reason string
}

func (e *ErrScoringFailed) Error() string {
	return fmt.Sprintf("scoring failed: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var tooLarge *ErrBodyTooLarge
	var scoring *ErrScoringFailed
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &scoring):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
