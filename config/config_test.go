package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth0/go-jwt-claims/validator"
)

func TestParse(t *testing.T) {
	p, err := Parse([]byte(`
expected_issuer: https://issuer.example.com/
expected_audience: ""
ignore_type_header: true
expect_issued_in_the_past: true
clock_skew: 30s
fixed_now: "2024-06-01T14:00:00+02:00"
`))
	require.NoError(t, err)

	require.NotNil(t, p.ExpectedIssuer)
	assert.Equal(t, "https://issuer.example.com/", *p.ExpectedIssuer)
	require.NotNil(t, p.ExpectedAudience)
	assert.Equal(t, "", *p.ExpectedAudience)
	assert.Nil(t, p.ExpectedTypeHeader)
	assert.True(t, p.IgnoreTypeHeader)
	assert.True(t, p.ExpectIssuedInThePast)
	assert.False(t, p.AllowMissingExpiration)
	assert.Equal(t, 30*time.Second, p.ClockSkew)

	policy, err := p.Build()
	require.NoError(t, err)

	assert.True(t, policy.HasExpectedIssuer())
	assert.Equal(t, "https://issuer.example.com/", policy.ExpectedIssuer())
	assert.True(t, policy.HasExpectedAudience())
	assert.Equal(t, "", policy.ExpectedAudience())
	assert.True(t, policy.IgnoreTypeHeader())
	assert.False(t, policy.IgnoreIssuer())
	assert.True(t, policy.ExpectIssuedInThePast())
	assert.Equal(t, 30*time.Second, policy.ClockSkew())
	require.True(t, policy.HasFixedNow())
	assert.True(t, policy.FixedNow().Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Options())

	policy, err := p.Build()
	require.NoError(t, err)
	assert.False(t, policy.HasExpectedIssuer())
	assert.False(t, policy.HasFixedNow())
	assert.Equal(t, time.Duration(0), policy.ClockSkew())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("expected_isuer: acme\n"))
	assert.ErrorContains(t, err, "parsing policy file")

	_, err = Parse([]byte("clock_skew: [1, 2]\n"))
	assert.ErrorContains(t, err, "parsing policy file")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "expected and ignored issuer",
			yaml:    "expected_issuer: acme\nignore_issuer: true\n",
			wantErr: "expected issuer and ignore issuer cannot be used together",
		},
		{
			name:    "expected and ignored audiences",
			yaml:    "expected_audience: svc\nignore_audiences: true\n",
			wantErr: "expected audience and ignore audiences cannot be used together",
		},
		{
			name:    "skew too large",
			yaml:    "clock_skew: 11m\n",
			wantErr: "clock skew too large",
		},
		{
			name:    "negative skew",
			yaml:    "clock_skew: -1s\n",
			wantErr: "clock skew cannot be negative",
		},
		{
			name:    "fixed now without offset",
			yaml:    "fixed_now: \"2024-06-01T12:00:00\"\n",
			wantErr: "must be an RFC 3339 timestamp with a time zone offset",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse([]byte(tc.yaml))
			require.NoError(t, err)

			_, err = p.Build()
			assert.ErrorIs(t, err, validator.ErrInvalidConfig)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBuild_ExtraOptions(t *testing.T) {
	p, err := Parse([]byte("expected_issuer: acme\n"))
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	policy, err := p.Build(validator.WithFixedNow(now))
	require.NoError(t, err)
	assert.True(t, policy.FixedNow().Equal(now))

	// A clock conflicts with the file's fixed now.
	p.FixedNow = "2024-06-01T12:00:00Z"
	_, err = p.Build(validator.WithClock(validator.SystemClock{}))
	assert.ErrorIs(t, err, validator.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("expected_type_header: at+jwt\nallow_missing_expiration: true\n"), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, p.ExpectedTypeHeader)
	assert.Equal(t, "at+jwt", *p.ExpectedTypeHeader)
	assert.True(t, p.AllowMissingExpiration)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading policy file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
