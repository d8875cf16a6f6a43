// Package server provides the HTTP API for the proposal studio.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/proposal-studio/internal/studio"
)

// ErrValidation indicates a malformed request body or parameter
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var inputErr *studio.InputError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErr), errors.As(err, &inputErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.Is(err, studio.ErrProjectNotFound), errors.Is(err, studio.ErrProposalNotFound):
		return http.StatusNotFound
	case errors.Is(err, studio.ErrContractRequired):
		return http.StatusForbidden
	case errors.Is(err, studio.ErrGenerationInProgress):
		return http.StatusConflict
	case errors.Is(err, studio.ErrProjectIncomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
