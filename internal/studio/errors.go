package studio

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Service operations.
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrProjectIncomplete    = errors.New("project has no intake or style profile")
	ErrContractRequired     = errors.New("full proposals require a signed contract")
	ErrGenerationInProgress = errors.New("a proposal is already being generated for this project")
)

// InputError reports caller input that failed validation.
type InputError struct {
	Input string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Input, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
