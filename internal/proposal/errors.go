package proposal

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

// GenerationUnavailableError explains why the error section was returned instead of a proposal.
type GenerationUnavailableError struct {
	Mode  string
	Cause error
}

func (e *GenerationUnavailableError) Error() string {
	return fmt.Sprintf("%s proposal generation unavailable: %v", e.Mode, e.Cause)
}

func (e *GenerationUnavailableError) Unwrap() error {
	return e.Cause
}
