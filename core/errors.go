package core

import "errors"

// Sentinel errors for claims checking.
var (
	// ErrClaimsMissing is returned when no claims were supplied and claims
	// are required.
	ErrClaimsMissing = errors.New("jwt claims missing")

	// ErrClaimsNotFound is returned when claims cannot be retrieved from context.
	ErrClaimsNotFound = errors.New("claims not found in context")

	// ErrPolicyNotSet is returned by New when WithPolicy was not used.
	ErrPolicyNotSet = errors.New("policy is required but not set (use WithPolicy option)")
)
