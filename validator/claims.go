package validator

import "time"

// Claims is the read-only view of a decoded, signature-verified token that
// Validate consumes. Each getter reports whether the claim is present; a
// claim carrying an empty string is still present.
type Claims interface {
	GetExpirationTime() (time.Time, bool)
	GetNotBefore() (time.Time, bool)
	GetIssuedAt() (time.Time, bool)
	GetTypeHeader() (string, bool)
	GetIssuer() (string, bool)
	GetAudience() ([]string, bool)
}

// TokenClaims is a plain Claims implementation. A nil pointer means the
// claim is absent. A nil Audience means no aud claim, while a non-nil empty
// slice is a present but empty one.
type TokenClaims struct {
	TypeHeader *string
	Issuer     *string
	Audience   []string
	Expiry     *time.Time
	NotBefore  *time.Time
	IssuedAt   *time.Time
}

var _ Claims = (*TokenClaims)(nil)

// GetExpirationTime returns exp. A nil *TokenClaims has no claims.
func (c *TokenClaims) GetExpirationTime() (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	return derefTime(c.Expiry)
}

// GetNotBefore returns nbf.
func (c *TokenClaims) GetNotBefore() (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	return derefTime(c.NotBefore)
}

// GetIssuedAt returns iat.
func (c *TokenClaims) GetIssuedAt() (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	return derefTime(c.IssuedAt)
}

// GetTypeHeader returns the typ header.
func (c *TokenClaims) GetTypeHeader() (string, bool) {
	if c == nil {
		return "", false
	}
	return derefString(c.TypeHeader)
}

// GetIssuer returns iss.
func (c *TokenClaims) GetIssuer() (string, bool) {
	if c == nil {
		return "", false
	}
	return derefString(c.Issuer)
}

// GetAudience returns aud, present when Audience is non-nil.
func (c *TokenClaims) GetAudience() ([]string, bool) {
	if c == nil {
		return nil, false
	}
	return c.Audience, c.Audience != nil
}

func derefTime(t *time.Time) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	return *t, true
}

func derefString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
