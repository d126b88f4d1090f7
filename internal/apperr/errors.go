// Package apperr defines the error taxonomy shared by every layer of the API
// and its mapping to HTTP status codes. Callers match with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthenticationRequired covers missing, invalid and expired credentials.
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInactiveAccount        = errors.New("inactive account")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrNotFound               = errors.New("not found")
	ErrValidation             = errors.New("validation error")
	ErrConflict               = errors.New("conflict")
	ErrInternal               = errors.New("internal error")

	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrAuthenticationRequired)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthenticationRequired)
)

// Status returns the HTTP status code for err. Errors outside the taxonomy
// are treated as internal.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInactiveAccount), errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation wraps a bind or validator failure as ErrValidation.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
