package jwtgoclaims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth0/go-jwt-claims/validator"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestFromMapClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		header  map[string]any
		want    *validator.TokenClaims
		wantErr string
	}{
		{
			name:   "nothing present",
			claims: jwt.MapClaims{"sub": "user"},
			want:   &validator.TokenClaims{},
		},
		{
			name: "all present",
			claims: jwt.MapClaims{
				"exp": float64(testNow.Add(time.Hour).Unix()),
				"nbf": float64(testNow.Add(-time.Hour).Unix()),
				"iat": float64(testNow.Unix()),
				"iss": "acme",
				"aud": []any{"a", "b"},
			},
			header: map[string]any{"typ": "at+jwt", "alg": "HS256"},
			want: &validator.TokenClaims{
				TypeHeader: ptr("at+jwt"),
				Issuer:     ptr("acme"),
				Audience:   []string{"a", "b"},
				Expiry:     ptr(testNow.Add(time.Hour)),
				NotBefore:  ptr(testNow.Add(-time.Hour)),
				IssuedAt:   ptr(testNow),
			},
		},
		{
			name:   "single string audience",
			claims: jwt.MapClaims{"aud": "a"},
			want:   &validator.TokenClaims{Audience: []string{"a"}},
		},
		{
			name:   "empty audience list is present",
			claims: jwt.MapClaims{"aud": []any{}},
			want:   &validator.TokenClaims{Audience: []string{}},
		},
		{
			name:   "empty issuer is present",
			claims: jwt.MapClaims{"iss": ""},
			want:   &validator.TokenClaims{Issuer: ptr("")},
		},
		{
			name:   "zero timestamps are present",
			claims: jwt.MapClaims{"exp": float64(0), "nbf": float64(0), "iat": float64(0)},
			want: &validator.TokenClaims{
				Expiry:    ptr(time.Unix(0, 0).UTC()),
				NotBefore: ptr(time.Unix(0, 0).UTC()),
				IssuedAt:  ptr(time.Unix(0, 0).UTC()),
			},
		},
		{
			name:    "issuer of the wrong type",
			claims:  jwt.MapClaims{"iss": 12},
			wantErr: "could not read iss",
		},
		{
			name:    "audience of the wrong type",
			claims:  jwt.MapClaims{"aud": 12},
			wantErr: "could not read aud",
		},
		{
			name:    "audience list with a number",
			claims:  jwt.MapClaims{"aud": []any{"a", 1}},
			wantErr: "could not read aud",
		},
		{
			name:    "expiration of the wrong type",
			claims:  jwt.MapClaims{"exp": "tomorrow"},
			wantErr: "could not read exp",
		},
		{
			name:    "null not before",
			claims:  jwt.MapClaims{"nbf": nil},
			wantErr: "could not read nbf",
		},
		{
			name:    "type header of the wrong type",
			claims:  jwt.MapClaims{},
			header:  map[string]any{"typ": true},
			wantErr: "could not read typ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromMapClaims(tc.claims, tc.header)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				assert.ErrorIs(t, err, jwt.ErrInvalidType)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FromMapClaims() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromToken(t *testing.T) {
	_, err := FromToken(nil)
	assert.EqualError(t, err, "token is nil")

	_, err = FromToken(jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{}))
	assert.ErrorIs(t, err, ErrUnsupportedClaims)

	got, err := FromToken(jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": "acme"}))
	require.NoError(t, err)
	want := &validator.TokenClaims{TypeHeader: ptr("JWT"), Issuer: ptr("acme")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromToken() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnverified(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": testNow.Add(time.Hour).Unix(),
		"aud": "svc",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, err := ParseUnverified(signed)
	require.NoError(t, err)

	want := &validator.TokenClaims{
		TypeHeader: ptr("JWT"),
		Audience:   []string{"svc"},
		Expiry:     ptr(testNow.Add(time.Hour)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseUnverified() mismatch (-want +got):\n%s", diff)
	}

	policy, err := validator.NewPolicy(
		validator.WithFixedNow(testNow),
		validator.WithExpectedTypeHeader("JWT"),
		validator.WithExpectedAudience("svc"),
	)
	require.NoError(t, err)
	assert.NoError(t, policy.Validate(got))

	_, err = ParseUnverified("not.a.token")
	assert.ErrorContains(t, err, "could not decode the token")
}

func TestFromMapClaims_ZeroTimestampsValidate(t *testing.T) {
	policy, err := validator.NewPolicy(
		validator.WithFixedNow(testNow),
		validator.WithExpectIssuedInThePast(),
		validator.WithAllowMissingExpiration(),
	)
	require.NoError(t, err)

	expired, err := FromMapClaims(jwt.MapClaims{"exp": float64(0)}, nil)
	require.NoError(t, err)
	assert.Equal(t, validator.ErrorCodeTokenExpired, validator.ErrorCode(policy.Validate(expired)))

	epoch, err := FromMapClaims(jwt.MapClaims{"nbf": float64(0), "iat": float64(0)}, nil)
	require.NoError(t, err)
	assert.NoError(t, policy.Validate(epoch))
}
