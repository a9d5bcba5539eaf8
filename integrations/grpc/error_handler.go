package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// ErrorHandler converts validation errors to gRPC status errors.
type ErrorHandler func(error) error

// DefaultErrorHandler maps claims validation errors to gRPC status codes.
//
// Missing claims and time-based failures are Unauthenticated, issuer,
// audience and type header mismatches are PermissionDenied, and an invalid
// policy is Internal.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return mapValidationError(validationErr)
	}

	if errors.Is(err, core.ErrClaimsMissing) {
		return status.Error(codes.Unauthenticated, "missing credentials")
	}

	if errors.Is(err, validator.ErrInvalidConfig) {
		return status.Error(codes.Internal, "unable to validate token")
	}

	// Anything else came from the claims extractor.
	return status.Error(codes.Unauthenticated, "invalid or malformed token")
}

func mapValidationError(err *validator.ValidationError) error {
	switch err.Code {
	case validator.ErrorCodeMissingExpiration,
		validator.ErrorCodeTokenExpired,
		validator.ErrorCodeTokenNotYetValid,
		validator.ErrorCodeMissingIssuedAt,
		validator.ErrorCodeIssuedInTheFuture:
		return status.Error(codes.Unauthenticated, err.Message)
	case validator.ErrorCodeInvalidIssuer,
		validator.ErrorCodeInvalidAudience,
		validator.ErrorCodeInvalidTypeHeader:
		return status.Error(codes.PermissionDenied, err.Message)
	default:
		return status.Error(codes.Unauthenticated, err.Message)
	}
}
