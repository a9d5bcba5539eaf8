package validator

import (
	"fmt"
	"slices"
	"time"
)

// Validate checks claims against the policy p and returns nil when the token
// is usable now, or a *ValidationError naming the first rule it breaks.
//
// The checks run in a fixed order: exp, nbf, iat, typ, iss, aud. Validate
// does not verify signatures; claims must come from a verified token.
func Validate(p *Policy, claims Claims) error {
	return p.Validate(claims)
}

// Validate is the method form of the package-level Validate.
func (p *Policy) Validate(claims Claims) error {
	if p == nil {
		return configError("policy is nil")
	}
	if isNilClaims(claims) {
		return configError("claims are nil")
	}

	now := p.Now()

	if err := p.validateTimes(claims, now); err != nil {
		return err
	}

	if err := validateStringClaim(p.typeHeader, claims.GetTypeHeader, "type header", "type_header", ErrorCodeInvalidTypeHeader); err != nil {
		return err
	}

	if err := validateStringClaim(p.issuer, claims.GetIssuer, "issuer", "issuer", ErrorCodeInvalidIssuer); err != nil {
		return err
	}

	return p.validateAudience(claims)
}

func (p *Policy) validateTimes(claims Claims, now time.Time) error {
	exp, hasExp := claims.GetExpirationTime()
	if !hasExp && !p.allowMissingExpiration {
		return NewValidationError(ErrorCodeMissingExpiration, "token is missing an expiration")
	}
	if hasExp && !exp.After(now.Add(-p.clockSkew)) {
		return NewValidationError(ErrorCodeTokenExpired,
			fmt.Sprintf("token has expired since %s", formatTime(exp)))
	}

	if nbf, ok := claims.GetNotBefore(); ok && nbf.After(now.Add(p.clockSkew)) {
		return NewValidationError(ErrorCodeTokenNotYetValid,
			fmt.Sprintf("token cannot be used before %s", formatTime(nbf)))
	}

	if p.expectIssuedInThePast {
		iat, ok := claims.GetIssuedAt()
		if !ok {
			return NewValidationError(ErrorCodeMissingIssuedAt, "token is missing iat claim")
		}
		if iat.After(now.Add(p.clockSkew)) {
			return NewValidationError(ErrorCodeIssuedInTheFuture,
				fmt.Sprintf("token has an invalid iat claim in the future: %s", formatTime(iat)))
		}
	}

	return nil
}

// validateStringClaim applies rule to a single-valued claim such as typ or iss.
func validateStringClaim(rule claimRule, get func() (string, bool), name, field, code string) error {
	actual, present := get()

	switch rule.mode {
	case ruleExpected:
		if !present {
			return NewValidationError(code,
				fmt.Sprintf("invalid JWT; missing expected %s %s.", name, rule.value))
		}
		if actual != rule.value {
			return NewValidationError(code,
				fmt.Sprintf("invalid JWT; expected %s %s, but got %s", name, rule.value, actual))
		}
	case ruleUnconstrained:
		if present {
			return NewValidationError(code,
				fmt.Sprintf("invalid JWT; token has %s set, but validator not.", field))
		}
	}

	return nil
}

func (p *Policy) validateAudience(claims Claims) error {
	audiences, present := claims.GetAudience()

	switch p.audience.mode {
	case ruleExpected:
		if !present || !slices.Contains(audiences, p.audience.value) {
			return NewValidationError(ErrorCodeInvalidAudience,
				fmt.Sprintf("invalid JWT; missing expected audience %s.", p.audience.value))
		}
	case ruleUnconstrained:
		if present {
			return NewValidationError(ErrorCodeInvalidAudience,
				"invalid JWT; token has audience set, but validator not.")
		}
	}

	return nil
}

func isNilClaims(claims Claims) bool {
	if claims == nil {
		return true
	}
	tc, ok := claims.(*TokenClaims)
	return ok && tc == nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
