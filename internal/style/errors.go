package style

import "fmt"

// APICallError represents a failed call to the generation service
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the API response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// GenerationUnavailableError explains why a generated profile was replaced by the fallback.
// It wraps an *APICallError, a *ParseError, a *schemas.ValidationError or a *types.StyleProfileError.
type GenerationUnavailableError struct {
	Cause error
}

func (e *GenerationUnavailableError) Error() string {
	return fmt.Sprintf("style profile generation unavailable: %v", e.Cause)
}

func (e *GenerationUnavailableError) Unwrap() error {
	return e.Cause
}
