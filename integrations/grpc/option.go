package grpc

import (
	"errors"

	"github.com/auth0/go-jwt-claims/core"
)

// Option configures the JWT interceptor.
type Option func(*JWTInterceptor) error

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by core.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// WithCore sets the claims checking core (REQUIRED).
//
// Example:
//
//	checker, _ := core.New(core.WithPolicy(policy))
//	interceptor, _ := grpc.New(grpc.WithCore(checker))
func WithCore(c *core.Core) Option {
	return func(i *JWTInterceptor) error {
		if c == nil {
			return errors.New("core cannot be nil")
		}
		i.core = c
		return nil
	}
}

// WithClaimsExtractor sets the function that supplies the verified claims of
// a call. Default is ContextClaimsExtractor.
func WithClaimsExtractor(extractor ClaimsExtractor) Option {
	return func(i *JWTInterceptor) error {
		if extractor == nil {
			return errors.New("claims extractor cannot be nil")
		}
		i.claimsExtractor = extractor
		return nil
	}
}

// WithErrorHandler sets a custom error handler function.
// Default is DefaultErrorHandler which maps errors to gRPC status codes.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(i *JWTInterceptor) error {
		if handler == nil {
			return errors.New("error handler cannot be nil")
		}
		i.errorHandler = handler
		return nil
	}
}

// WithExcludedMethods excludes specific gRPC methods from claims validation.
// Methods should be provided in the format: "/package.Service/Method"
func WithExcludedMethods(methods ...string) Option {
	return func(i *JWTInterceptor) error {
		for _, method := range methods {
			i.excludedMethods[method] = true
		}
		return nil
	}
}

// WithLogger sets an optional logger for the interceptor's own messages.
// Pass the same logger to core.WithLogger to log validation outcomes.
func WithLogger(logger Logger) Option {
	return func(i *JWTInterceptor) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		i.logger = logger
		return nil
	}
}
