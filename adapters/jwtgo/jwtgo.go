// Package jwtgoclaims converts github.com/golang-jwt/jwt/v5 tokens into
// validator.TokenClaims.
//
// Only jwt.MapClaims can be converted: a claim is present exactly when its key
// is in the map, which struct based claims cannot express.
package jwtgoclaims

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/auth0/go-jwt-claims/validator"
)

// ErrUnsupportedClaims is returned for tokens whose claims are not jwt.MapClaims.
var ErrUnsupportedClaims = errors.New("unsupported claims type")

// FromToken converts a parsed token. Parse it with jwt.MapClaims.
func FromToken(tok *jwt.Token) (*validator.TokenClaims, error) {
	if tok == nil {
		return nil, errors.New("token is nil")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedClaims, tok.Claims)
	}

	return FromMapClaims(claims, tok.Header)
}

// FromMapClaims converts a claims map and a token header. header may be nil.
// Claims present with the wrong JSON type are reported as errors.
func FromMapClaims(claims jwt.MapClaims, header map[string]any) (*validator.TokenClaims, error) {
	out := &validator.TokenClaims{}
	var err error

	if out.Expiry, err = timeClaim(claims, "exp", claims.GetExpirationTime); err != nil {
		return nil, err
	}
	if out.NotBefore, err = timeClaim(claims, "nbf", claims.GetNotBefore); err != nil {
		return nil, err
	}
	if out.IssuedAt, err = timeClaim(claims, "iat", claims.GetIssuedAt); err != nil {
		return nil, err
	}

	if _, ok := claims["iss"]; ok {
		iss, err := claims.GetIssuer()
		if err != nil {
			return nil, fmt.Errorf("could not read iss: %w", err)
		}
		out.Issuer = &iss
	}

	if raw, ok := claims["aud"]; ok {
		// GetAudience ignores values that are neither strings nor lists.
		switch raw.(type) {
		case string, []string, []any:
		default:
			return nil, fmt.Errorf("could not read aud: %w", jwt.ErrInvalidType)
		}
		aud, err := claims.GetAudience()
		if err != nil {
			return nil, fmt.Errorf("could not read aud: %w", err)
		}
		out.Audience = append([]string{}, aud...)
	}

	if raw, ok := header["typ"]; ok {
		typ, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("could not read typ: %w", jwt.ErrInvalidType)
		}
		out.TypeHeader = &typ
	}

	return out, nil
}

// ParseUnverified decodes a compact JWT WITHOUT verifying its signature and
// converts its claims. Use it only on tokens that were already verified, or
// for inspection.
func ParseUnverified(token string) (*validator.TokenClaims, error) {
	tok, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("could not decode the token: %w", err)
	}
	return FromToken(tok)
}

func timeClaim(claims jwt.MapClaims, key string, get func() (*jwt.NumericDate, error)) (*time.Time, error) {
	if _, ok := claims[key]; !ok {
		return nil, nil
	}

	date, err := get()
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", key, err)
	}
	// MapClaims reports a numeric 0 as a nil date, but the claim is present.
	if date == nil {
		t := time.Unix(0, 0).UTC()
		return &t, nil
	}
	t := date.Time.UTC()
	return &t, nil
}
