package validator

import "errors"

// Sentinel errors for claims validation.
var (
	// ErrInvalidConfig is matched by every error returned while building a
	// Policy. These are caller programming errors, never token-dependent.
	ErrInvalidConfig = errors.New("invalid validation policy")

	// ErrTokenInvalid is matched by every error returned from Validate when
	// the token's claims violate the policy.
	ErrTokenInvalid = errors.New("jwt invalid")
)

// Error codes carried by ValidationError.
const (
	ErrorCodeMissingExpiration = "missing_expiration"
	ErrorCodeTokenExpired      = "token_expired"
	ErrorCodeTokenNotYetValid  = "token_not_yet_valid"
	ErrorCodeMissingIssuedAt   = "missing_iat"
	ErrorCodeIssuedInTheFuture = "iat_in_future"
	ErrorCodeInvalidTypeHeader = "invalid_type_header"
	ErrorCodeInvalidIssuer     = "invalid_issuer"
	ErrorCodeInvalidAudience   = "invalid_audience"
)

// ConfigError is returned when a Policy cannot be built from the
// supplied options.
type ConfigError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.Message
}

// Is allows the error to be compared with ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// ValidationError describes the first rule a token violated.
// Code is machine-readable; Message is meant for logs.
type ValidationError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is allows the error to be compared with ErrTokenInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrTokenInvalid
}

// NewValidationError creates a new ValidationError with the given code and message.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
	}
}

// ErrorCode returns the code of the ValidationError in err's chain,
// or the empty string if there is none.
func ErrorCode(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code
	}
	return ""
}
