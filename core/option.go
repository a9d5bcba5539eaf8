package core

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/auth0/go-jwt-claims/validator"
)

// Option is a function that configures the Core.
// Options return errors to enable validation during construction.
type Option func(*Core) error

// New creates a new Core instance with the provided options.
//
// The Core must be configured with a policy using WithPolicy.
// All other options are optional.
//
// Example:
//
//	policy, _ := validator.NewPolicy(validator.WithExpectedAudience("my-api"))
//	core, err := core.New(
//	    core.WithPolicy(policy),
//	    core.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Core, error) {
	c := &Core{
		claimsOptional: false, // Secure default: require claims
		tracer:         noop.NewTracerProvider().Tracer("github.com/auth0/go-jwt-claims/core"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.policy == nil {
		return nil, ErrPolicyNotSet
	}

	return c, nil
}

// WithPolicy sets the validation policy for the Core.
// This is a required option.
func WithPolicy(policy *validator.Policy) Option {
	return func(c *Core) error {
		if policy == nil {
			return errors.New("policy cannot be nil")
		}
		c.policy = policy
		return nil
	}
}

// WithClaimsOptional configures whether a request without claims may pass.
//
// When set to false (default), CheckClaims returns ErrClaimsMissing for nil claims.
func WithClaimsOptional(optional bool) Option {
	return func(c *Core) error {
		c.claimsOptional = optional
		return nil
	}
}

// WithLogger sets an optional logger for the Core.
func WithLogger(logger Logger) Option {
	return func(c *Core) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithMetrics sets an optional metrics sink for the Core.
func WithMetrics(metrics Metrics) Option {
	return func(c *Core) error {
		if metrics == nil {
			return errors.New("metrics cannot be nil")
		}
		c.metrics = metrics
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer used for CheckClaims spans.
// The default is a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Core) error {
		if tracer == nil {
			return errors.New("tracer cannot be nil")
		}
		c.tracer = tracer
		return nil
	}
}
