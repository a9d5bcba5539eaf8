package jwtclaims

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// ErrJWTInvalid is matched by errors from the ClaimsFunc, meaning the
// request's token could not be verified.
var ErrJWTInvalid = errors.New("jwt invalid")

// ErrorHandler is a handler which is called when an error occurs in the
// Middleware. The default handler returns 400 for core.ErrClaimsMissing,
// 401 for ErrJWTInvalid and validator.ErrTokenInvalid, and 500 for all other
// errors.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler is the default error handler implementation for the
// Middleware. If an error handler is not provided via the WithErrorHandler
// option this will be used.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, core.ErrClaimsMissing):
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"JWT is missing."}`))
	case errors.Is(err, validator.ErrTokenInvalid):
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprintf(w, `{"message":"JWT claims are invalid.","code":%q}`, validator.ErrorCode(err))
	case errors.Is(err, ErrJWTInvalid):
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"JWT is invalid."}`))
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Something went wrong while checking the JWT."}`))
	}
}

// invalidError wraps a ClaimsFunc error with ErrJWTInvalid.
type invalidError struct {
	details error
}

// Is allows the error to support equality to ErrJWTInvalid.
func (e *invalidError) Is(target error) bool {
	return target == ErrJWTInvalid
}

// Error returns a string representation of the error.
func (e *invalidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrJWTInvalid, e.details)
}

// Unwrap allows the error to support equality to the
// underlying error and not just ErrJWTInvalid.
func (e *invalidError) Unwrap() error {
	return e.details
}
