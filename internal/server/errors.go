// Package server provides the HTTP REST API for the placement platform.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nikhil/placement-hub/internal/advisor"
	"github.com/nikhil/placement-hub/internal/application"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrForbidden indicates the caller's role does not permit the operation.
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return e.Reason
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Sentinel errors from the application and advisor services are matched
// with errors.Is so wrapped errors still map correctly.
func HTTPStatus(err error) int {
	var forbiddenTransition *application.ForbiddenTransitionError
	switch {
	case errors.As(err, &forbiddenTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrAlreadyApplied),
		errors.Is(err, application.ErrJobNotOpen):
		return http.StatusConflict
	case errors.Is(err, application.ErrJobNotFound),
		errors.Is(err, application.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, advisor.ErrProfileNotFound):
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
