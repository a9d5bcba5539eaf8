// Package jwxclaims exposes github.com/lestrrat-go/jwx/v2 tokens as
// validator.Claims.
package jwxclaims

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/auth0/go-jwt-claims/validator"
)

var _ validator.Claims = (*Claims)(nil)

// Claims reads the registered claims of a jwx token and the "typ" field of
// its protected header. A claim is present when it was set on the token,
// regardless of its value.
type Claims struct {
	token   jwt.Token
	headers jws.Headers
}

// New wraps tok and its protected headers. headers may be nil, in which case
// the type header is absent.
func New(tok jwt.Token, headers jws.Headers) *Claims {
	return &Claims{token: tok, headers: headers}
}

// Parse verifies the signature of a compact JWS using the given jwt options
// (typically jwt.WithKey or jwt.WithKeySet) and returns its claims. jwx's own
// time validation is disabled so the policy alone decides exp, nbf and iat.
func Parse(data []byte, opts ...jwt.ParseOption) (*Claims, error) {
	opts = append(opts, jwt.WithValidate(false))
	tok, err := jwt.Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not parse the token: %w", err)
	}

	msg, err := jws.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not read the token headers: %w", err)
	}
	signatures := msg.Signatures()
	if len(signatures) != 1 {
		return nil, errors.New("token must have exactly one signature")
	}

	return New(tok, signatures[0].ProtectedHeaders()), nil
}

// Token returns the wrapped token.
func (c *Claims) Token() jwt.Token {
	return c.token
}

// GetExpirationTime returns exp in UTC.
func (c *Claims) GetExpirationTime() (time.Time, bool) {
	return c.timeClaim(jwt.ExpirationKey, c.token.Expiration)
}

// GetNotBefore returns nbf in UTC.
func (c *Claims) GetNotBefore() (time.Time, bool) {
	return c.timeClaim(jwt.NotBeforeKey, c.token.NotBefore)
}

// GetIssuedAt returns iat in UTC.
func (c *Claims) GetIssuedAt() (time.Time, bool) {
	return c.timeClaim(jwt.IssuedAtKey, c.token.IssuedAt)
}

// GetIssuer returns iss.
func (c *Claims) GetIssuer() (string, bool) {
	if _, ok := c.token.Get(jwt.IssuerKey); !ok {
		return "", false
	}
	return c.token.Issuer(), true
}

// GetAudience returns aud.
func (c *Claims) GetAudience() ([]string, bool) {
	if _, ok := c.token.Get(jwt.AudienceKey); !ok {
		return nil, false
	}
	return c.token.Audience(), true
}

// GetTypeHeader returns the typ field of the protected header.
func (c *Claims) GetTypeHeader() (string, bool) {
	if c.headers == nil {
		return "", false
	}
	if _, ok := c.headers.Get(jws.TypeKey); !ok {
		return "", false
	}
	return c.headers.Type(), true
}

func (c *Claims) timeClaim(key string, value func() time.Time) (time.Time, bool) {
	if _, ok := c.token.Get(key); !ok {
		return time.Time{}, false
	}
	return value().UTC(), true
}
