package validator

import (
	"fmt"
	"time"
)

// Option is how options for the Policy are set up.
// Options return errors to enable validation during construction.
type Option func(*Policy) error

// WithExpectedTypeHeader requires the token's type header (typ) to equal
// typeHeader exactly. It cannot be combined with WithIgnoreTypeHeader.
func WithExpectedTypeHeader(typeHeader string) Option {
	return func(p *Policy) error {
		return setRule(&p.typeHeader, claimRule{mode: ruleExpected, value: typeHeader},
			"expected type header and ignore type header cannot be used together")
	}
}

// WithIgnoreTypeHeader accepts tokens with any type header, or none.
func WithIgnoreTypeHeader() Option {
	return func(p *Policy) error {
		return setRule(&p.typeHeader, claimRule{mode: ruleIgnored},
			"expected type header and ignore type header cannot be used together")
	}
}

// WithExpectedIssuer requires the issuer claim (iss) to equal issuer exactly.
// It cannot be combined with WithIgnoreIssuer.
func WithExpectedIssuer(issuer string) Option {
	return func(p *Policy) error {
		return setRule(&p.issuer, claimRule{mode: ruleExpected, value: issuer},
			"expected issuer and ignore issuer cannot be used together")
	}
}

// WithIgnoreIssuer accepts tokens with any issuer claim, or none.
func WithIgnoreIssuer() Option {
	return func(p *Policy) error {
		return setRule(&p.issuer, claimRule{mode: ruleIgnored},
			"expected issuer and ignore issuer cannot be used together")
	}
}

// WithExpectedAudience requires audience to be one of the token's audiences
// (aud). It cannot be combined with WithIgnoreAudiences.
func WithExpectedAudience(audience string) Option {
	return func(p *Policy) error {
		return setRule(&p.audience, claimRule{mode: ruleExpected, value: audience},
			"expected audience and ignore audiences cannot be used together")
	}
}

// WithIgnoreAudiences accepts tokens with any audience claim, or none.
func WithIgnoreAudiences() Option {
	return func(p *Policy) error {
		return setRule(&p.audience, claimRule{mode: ruleIgnored},
			"expected audience and ignore audiences cannot be used together")
	}
}

// WithAllowMissingExpiration accepts tokens without an exp claim.
// An exp claim that is present is still checked.
func WithAllowMissingExpiration() Option {
	return func(p *Policy) error {
		p.allowMissingExpiration = true
		return nil
	}
}

// WithExpectIssuedInThePast requires an iat claim that is not in the future.
func WithExpectIssuedInThePast() Option {
	return func(p *Policy) error {
		p.expectIssuedInThePast = true
		return nil
	}
}

// WithClockSkew sets the tolerance applied to exp, nbf and iat.
//
// The same skew widens the acceptance window in both directions. It must be
// between 0 and MaxClockSkew. If not set, the default is 0.
func WithClockSkew(skew time.Duration) Option {
	return func(p *Policy) error {
		if skew < 0 {
			return configError("clock skew cannot be negative")
		}
		if skew > MaxClockSkew {
			return configError(fmt.Sprintf("clock skew too large, max is %s", MaxClockSkew))
		}
		p.clockSkew = skew
		return nil
	}
}

// WithFixedNow validates every token against now instead of the wall clock.
//
// The zero time.Time carries no instant or zone and is rejected.
// WithFixedNow cannot be combined with WithClock.
func WithFixedNow(now time.Time) Option {
	return func(p *Policy) error {
		if now.IsZero() {
			return configError("fixed now without time zone information")
		}
		if p.clock != nil && p.fixedNow == nil {
			return configError("fixed now and clock cannot be used together")
		}
		p.fixedNow = &now
		p.clock = NewFixedClock(now)
		return nil
	}
}

// WithFixedNowRFC3339 is WithFixedNow for an RFC 3339 timestamp. The
// timestamp must carry a "Z" or numeric offset; local times such as
// "2024-01-02T03:04:05" are rejected.
func WithFixedNowRFC3339(now string) Option {
	return func(p *Policy) error {
		t, err := time.Parse(time.RFC3339, now)
		if err != nil {
			return configError(fmt.Sprintf("fixed now %q must be an RFC 3339 timestamp with a time zone offset", now))
		}
		return WithFixedNow(t)(p)
	}
}

// WithClock sets the time source used for validation.
// It cannot be combined with WithFixedNow.
func WithClock(clock Clock) Option {
	return func(p *Policy) error {
		if clock == nil {
			return configError("clock cannot be nil")
		}
		if p.fixedNow != nil {
			return configError("fixed now and clock cannot be used together")
		}
		p.clock = clock
		return nil
	}
}

func setRule(current *claimRule, next claimRule, conflict string) error {
	if current.mode != ruleUnconstrained && current.mode != next.mode {
		return configError(conflict)
	}
	*current = next
	return nil
}
