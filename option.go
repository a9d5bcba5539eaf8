package jwtclaims

import (
	"errors"
	"net/http"
)

// Option configures the Middleware.
// Returns error for validation failures.
type Option func(*Middleware) error

// Sentinel errors for middleware configuration.
var (
	ErrCoreNil            = errors.New("core cannot be nil")
	ErrClaimsFuncNil      = errors.New("claims func cannot be nil")
	ErrErrorHandlerNil    = errors.New("error handler cannot be nil")
	ErrExclusionUrlsEmpty = errors.New("exclusion URLs list cannot be empty")
)

// WithErrorHandler sets the handler called when claims are missing, invalid
// or cannot be obtained. Default: DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Middleware) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		m.errorHandler = h
		return nil
	}
}

// WithValidateOnOptions sets whether OPTIONS requests are validated.
// Default: true.
func WithValidateOnOptions(value bool) Option {
	return func(m *Middleware) error {
		m.validateOnOptions = value
		return nil
	}
}

// WithExclusionUrls skips validation for requests whose full URL or path
// equals one of exclusions.
func WithExclusionUrls(exclusions []string) Option {
	return func(m *Middleware) error {
		if len(exclusions) == 0 {
			return ErrExclusionUrlsEmpty
		}
		m.exclusionUrlHandler = func(r *http.Request) bool {
			requestFullURL := r.URL.String()
			requestPath := r.URL.Path

			for _, exclusion := range exclusions {
				if requestFullURL == exclusion || requestPath == exclusion {
					return true
				}
			}
			return false
		}
		return nil
	}
}
