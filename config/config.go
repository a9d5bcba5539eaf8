// Package config loads validation policies from YAML files.
//
//	expected_issuer: https://issuer.example.com/
//	expected_audience: my-api
//	ignore_type_header: true
//	expect_issued_in_the_past: true
//	clock_skew: 30s
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/auth0/go-jwt-claims/validator"
)

// Policy is the file form of a validator.Policy. Unset fields keep the
// validator defaults.
type Policy struct {
	// ExpectedTypeHeader, ExpectedIssuer and ExpectedAudience require the
	// claim to carry the given value. An empty string is a valid expectation.
	ExpectedTypeHeader *string `yaml:"expected_type_header"`
	ExpectedIssuer     *string `yaml:"expected_issuer"`
	ExpectedAudience   *string `yaml:"expected_audience"`

	IgnoreTypeHeader bool `yaml:"ignore_type_header"`
	IgnoreIssuer     bool `yaml:"ignore_issuer"`
	IgnoreAudiences  bool `yaml:"ignore_audiences"`

	AllowMissingExpiration bool `yaml:"allow_missing_expiration"`
	ExpectIssuedInThePast  bool `yaml:"expect_issued_in_the_past"`

	// ClockSkew is a Go duration such as "30s".
	ClockSkew time.Duration `yaml:"clock_skew"`

	// FixedNow is an RFC 3339 timestamp with an offset, e.g. 2024-06-01T12:00:00Z.
	FixedNow string `yaml:"fixed_now"`
}

// Load reads and parses the policy file at path.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML policy. Unknown keys are rejected.
func Parse(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.UnmarshalWithOptions(data, &p, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parsing policy file: %w", err)
	}
	return &p, nil
}

// Options translates the file into validator options. Conflicts such as an
// expected and an ignored issuer surface when the options are applied.
func (p *Policy) Options() []validator.Option {
	var opts []validator.Option

	if p.ExpectedTypeHeader != nil {
		opts = append(opts, validator.WithExpectedTypeHeader(*p.ExpectedTypeHeader))
	}
	if p.IgnoreTypeHeader {
		opts = append(opts, validator.WithIgnoreTypeHeader())
	}
	if p.ExpectedIssuer != nil {
		opts = append(opts, validator.WithExpectedIssuer(*p.ExpectedIssuer))
	}
	if p.IgnoreIssuer {
		opts = append(opts, validator.WithIgnoreIssuer())
	}
	if p.ExpectedAudience != nil {
		opts = append(opts, validator.WithExpectedAudience(*p.ExpectedAudience))
	}
	if p.IgnoreAudiences {
		opts = append(opts, validator.WithIgnoreAudiences())
	}
	if p.AllowMissingExpiration {
		opts = append(opts, validator.WithAllowMissingExpiration())
	}
	if p.ExpectIssuedInThePast {
		opts = append(opts, validator.WithExpectIssuedInThePast())
	}
	if p.ClockSkew != 0 {
		opts = append(opts, validator.WithClockSkew(p.ClockSkew))
	}
	if p.FixedNow != "" {
		opts = append(opts, validator.WithFixedNowRFC3339(p.FixedNow))
	}

	return opts
}

// Build constructs the validator.Policy described by the file, with extra
// options applied after the file's own.
func (p *Policy) Build(extra ...validator.Option) (*validator.Policy, error) {
	policy, err := validator.NewPolicy(append(p.Options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("building policy: %w", err)
	}
	return policy, nil
}
