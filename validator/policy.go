package validator

import "time"

// MaxClockSkew is the largest clock skew a Policy accepts.
const MaxClockSkew = 10 * time.Minute

type ruleMode int

const (
	ruleUnconstrained ruleMode = iota
	ruleIgnored
	ruleExpected
)

// claimRule is the choice a Policy makes for a single string claim: leave it
// unconstrained (present means rejected), ignore it, or expect a value.
type claimRule struct {
	mode  ruleMode
	value string
}

func (r claimRule) expected() (string, bool) {
	return r.value, r.mode == ruleExpected
}

// Policy defines how the claims of a token are validated.
//
// By default a Policy requires an expiration claim and rejects tokens that
// carry a type header, an issuer or an audience. Options change this. A
// Policy is immutable once built and safe for concurrent use.
type Policy struct {
	typeHeader claimRule
	issuer     claimRule
	audience   claimRule

	allowMissingExpiration bool
	expectIssuedInThePast  bool
	clockSkew              time.Duration

	clock    Clock
	fixedNow *time.Time
}

// NewPolicy builds a Policy from the given options.
//
// Example:
//
//	p, err := validator.NewPolicy(
//	    validator.WithExpectedIssuer("https://issuer.example.com/"),
//	    validator.WithExpectedAudience("my-api"),
//	    validator.WithIgnoreTypeHeader(),
//	    validator.WithClockSkew(30*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewPolicy(opts ...Option) (*Policy, error) {
	p := &Policy{}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.clock == nil {
		p.clock = SystemClock{}
	}

	return p, nil
}

// HasExpectedTypeHeader reports whether a type header value is required.
func (p *Policy) HasExpectedTypeHeader() bool {
	_, ok := p.typeHeader.expected()
	return ok
}

// ExpectedTypeHeader returns the required type header, or "" if none is set.
func (p *Policy) ExpectedTypeHeader() string {
	return p.typeHeader.value
}

// HasExpectedIssuer reports whether an issuer value is required.
func (p *Policy) HasExpectedIssuer() bool {
	_, ok := p.issuer.expected()
	return ok
}

// ExpectedIssuer returns the required issuer, or "" if none is set.
func (p *Policy) ExpectedIssuer() string {
	return p.issuer.value
}

// HasExpectedAudience reports whether an audience value is required.
func (p *Policy) HasExpectedAudience() bool {
	_, ok := p.audience.expected()
	return ok
}

// ExpectedAudience returns the audience a token must contain, or "" if none is set.
func (p *Policy) ExpectedAudience() string {
	return p.audience.value
}

// IgnoreTypeHeader reports whether the type header is skipped entirely.
func (p *Policy) IgnoreTypeHeader() bool { return p.typeHeader.mode == ruleIgnored }

// IgnoreIssuer reports whether the issuer is skipped entirely.
func (p *Policy) IgnoreIssuer() bool { return p.issuer.mode == ruleIgnored }

// IgnoreAudiences reports whether the audience is skipped entirely.
func (p *Policy) IgnoreAudiences() bool { return p.audience.mode == ruleIgnored }

// AllowMissingExpiration reports whether tokens without exp are accepted.
func (p *Policy) AllowMissingExpiration() bool { return p.allowMissingExpiration }

// ExpectIssuedInThePast reports whether iat is required and checked.
func (p *Policy) ExpectIssuedInThePast() bool { return p.expectIssuedInThePast }

// ClockSkew returns the leeway applied to exp, nbf and iat.
func (p *Policy) ClockSkew() time.Duration { return p.clockSkew }

// HasFixedNow reports whether the Policy was built with WithFixedNow.
func (p *Policy) HasFixedNow() bool {
	return p.fixedNow != nil
}

// FixedNow returns the instant set with WithFixedNow, or the zero time.
func (p *Policy) FixedNow() time.Time {
	if p.fixedNow == nil {
		return time.Time{}
	}
	return *p.fixedNow
}

// Clock returns the time source the Policy validates against. A Policy not
// built by NewPolicy uses SystemClock.
func (p *Policy) Clock() Clock {
	if p.clock == nil {
		return SystemClock{}
	}
	return p.clock
}

// Now reads the Policy's clock.
func (p *Policy) Now() time.Time {
	return p.Clock().Now()
}
