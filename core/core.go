package core

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/auth0/go-jwt-claims/validator"
)

// Metric names recorded by CheckClaims.
const (
	MetricValidationsTotal   = "jwt_claims_validations_total"
	MetricValidationDuration = "jwt_claims_validation_duration_seconds"
)

// Logger defines an optional logging interface for the core.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics defines an optional metrics sink for the core.
type Metrics interface {
	IncCounter(name string, tags map[string]string)
	ObserveHistogram(name string, value float64, tags map[string]string)
}

// Core is the framework-agnostic claims checking engine.
type Core struct {
	policy         *validator.Policy
	claimsOptional bool
	logger         Logger
	metrics        Metrics
	tracer         trace.Tracer
}

// Policy returns the policy the Core validates against.
func (c *Core) Policy() *validator.Policy {
	return c.policy
}

// CheckClaims validates the claims of an already verified token.
//
//   - If claims is nil and claims are optional, returns nil
//   - If claims is nil and claims are required, returns ErrClaimsMissing
//   - Otherwise returns the result of validating claims against the policy
func (c *Core) CheckClaims(ctx context.Context, claims validator.Claims) error {
	_, span := c.tracer.Start(ctx, "jwtclaims.CheckClaims")
	defer span.End()

	if claims == nil {
		if c.claimsOptional {
			if c.logger != nil {
				c.logger.Debug("No claims provided, but claims are optional")
			}
			span.SetAttributes(attribute.String("jwt.result", "skipped"))
			return nil
		}

		if c.logger != nil {
			c.logger.Warn("No claims provided and claims are required")
		}
		c.record(span, "missing", "", 0)
		span.SetStatus(codes.Error, ErrClaimsMissing.Error())

		return ErrClaimsMissing
	}

	start := time.Now()
	err := c.policy.Validate(claims)
	duration := time.Since(start)

	if err != nil {
		code := validator.ErrorCode(err)
		if c.logger != nil {
			c.logger.Error("Claims validation failed", "error", err, "code", code, "duration", duration)
		}
		c.record(span, "rejected", code, duration)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	if c.logger != nil {
		c.logger.Debug("Claims validated successfully", "duration", duration)
	}
	c.record(span, "accepted", "", duration)

	return nil
}

func (c *Core) record(span trace.Span, result, code string, duration time.Duration) {
	span.SetAttributes(attribute.String("jwt.result", result))
	if code != "" {
		span.SetAttributes(attribute.String("jwt.error_code", code))
	}

	if c.metrics == nil {
		return
	}
	c.metrics.IncCounter(MetricValidationsTotal, map[string]string{"result": result, "code": code})
	c.metrics.ObserveHistogram(MetricValidationDuration, duration.Seconds(), map[string]string{"result": result})
}
