/*
Package validator decides whether the claims of an already verified JWT are
acceptable right now, for this audience, from this issuer.

It does not parse tokens or verify signatures. Callers decode and verify a
token with the library of their choice, expose its claims through the Claims
interface (see the adapters packages for jwx and golang-jwt) and hand them to
Validate together with a Policy.

# Policy

A Policy is built once with NewPolicy and never changes afterwards:

	p, err := validator.NewPolicy(
	    validator.WithExpectedIssuer("https://auth.example.com/"),
	    validator.WithExpectedAudience("my-api"),
	    validator.WithIgnoreTypeHeader(),
	    validator.WithClockSkew(30*time.Second),
	)
	if err != nil {
	    log.Fatal(err)
	}

The default Policy is strict:

  - the token must carry an exp claim
  - a token carrying typ, iss or aud is rejected unless the Policy either
    expects a value for that claim or explicitly ignores it

Expecting and ignoring the same claim, a clock skew above MaxClockSkew and a
fixed clock without zone information are rejected by NewPolicy with an error
matching ErrInvalidConfig.

# Validation

Validate runs its checks in a fixed order and reports only the first failure:

 1. exp: required unless WithAllowMissingExpiration; expired when exp <= now - skew
 2. nbf: not yet valid when nbf > now + skew
 3. iat: with WithExpectIssuedInThePast, required and not after now + skew
 4. typ: exact match, or rejected when present and not ignored
 5. iss: exact match, or rejected when present and not ignored
 6. aud: must contain the expected audience, or rejected when present and not ignored

Failures are *ValidationError values matching ErrTokenInvalid:

	if err := p.Validate(claims); err != nil {
	    if errors.Is(err, validator.ErrTokenInvalid) {
	        log.Printf("rejected token (%s): %v", validator.ErrorCode(err), err)
	    }
	}

# Time

Validation uses the UTC wall clock. WithFixedNow freezes it for tests and
replays and WithClock plugs in any other Clock.
*/
package validator
