package grpc

import (
	"context"
	"errors"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// ClaimsExtractor returns the verified claims of a call, or nil, nil when the
// call carries no token.
type ClaimsExtractor func(ctx context.Context) (validator.Claims, error)

// ContextClaimsExtractor reads claims stored with core.SetClaims by an
// upstream interceptor that verified the token's signature.
func ContextClaimsExtractor(ctx context.Context) (validator.Claims, error) {
	claims, err := core.GetClaims[validator.Claims](ctx)
	if errors.Is(err, core.ErrClaimsNotFound) && !core.HasClaims(ctx) {
		return nil, nil
	}
	return claims, err
}

// GetClaims retrieves claims from the context with type safety using generics.
//
// Example:
//
//	claims, err := jwtgrpc.GetClaims[validator.Claims](ctx)
//	if err != nil {
//	    return nil, status.Error(codes.Internal, "failed to get claims")
//	}
func GetClaims[T any](ctx context.Context) (T, error) {
	return core.GetClaims[T](ctx)
}

// MustGetClaims retrieves claims from the context or panics.
// Use only when you are certain claims exist (e.g., after interceptor has run).
func MustGetClaims[T any](ctx context.Context) T {
	claims, err := core.GetClaims[T](ctx)
	if err != nil {
		panic(err)
	}
	return claims
}

// HasClaims checks if claims exist in the context.
func HasClaims(ctx context.Context) bool {
	return core.HasClaims(ctx)
}
