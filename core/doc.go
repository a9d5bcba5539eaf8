/*
Package core provides framework-agnostic claims checking that can be used
across different transport layers (HTTP, gRPC, etc.).

The Core type wraps a validator.Policy with the missing-claims decision,
logging, metrics and tracing, without dependencies on any transport.

# Architecture

	┌─────────────────────────────────────────────┐
	│         Transport Adapters                  │
	│  (net/http, Gin, Echo, gRPC)                │
	└────────────────┬────────────────────────────┘
	                 │ verified claims
	                 ▼
	┌─────────────────────────────────────────────┐
	│          Core Engine (THIS PACKAGE)         │
	│  • Claims Optional Logic                    │
	│  • Logger, Metrics and Span Integration     │
	└────────────────┬────────────────────────────┘
	                 │
	                 ▼
	┌─────────────────────────────────────────────┐
	│          validator.Policy                   │
	│  (exp, nbf, iat, typ, iss, aud)             │
	└─────────────────────────────────────────────┘

Extracting the token and verifying its signature happens before the adapter:
the adapters receive decoded claims.

# Basic Usage

	policy, err := validator.NewPolicy(
	    validator.WithExpectedIssuer("https://issuer.example.com/"),
	    validator.WithExpectedAudience("my-api"),
	)
	if err != nil {
	    log.Fatal(err)
	}

	c, err := core.New(
	    core.WithPolicy(policy),
	    core.WithClaimsOptional(false),
	)
	if err != nil {
	    log.Fatal(err)
	}

	if err := c.CheckClaims(ctx, claims); err != nil {
	    // Handle validation error
	}

# Type-Safe Context Helpers

	// Store claims in context
	ctx = core.SetClaims(ctx, claims)

	// Retrieve claims with type safety
	claims, err := core.GetClaims[validator.Claims](ctx)
	if err != nil {
	    // Claims not found
	}

# Error Handling

	if err := c.CheckClaims(ctx, claims); err != nil {
	    if errors.Is(err, core.ErrClaimsMissing) {
	        // No claims and claims are required
	    }

	    switch validator.ErrorCode(err) {
	    case validator.ErrorCodeTokenExpired:
	        // Handle expired token
	    case validator.ErrorCodeInvalidAudience:
	        // Handle audience mismatch
	    }
	}

# Observability

Logger, Metrics and an OpenTelemetry tracer are optional:

	c, err := core.New(
	    core.WithPolicy(policy),
	    core.WithLogger(slog.Default()),
	    core.WithMetrics(jwtclaims.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
	    core.WithTracer(otel.Tracer("jwtclaims")),
	)

Every check records the jwt_claims_validations_total counter with result and
code labels, the jwt_claims_validation_duration_seconds histogram, and a
jwtclaims.CheckClaims span.

# Context Keys

The package uses an unexported context key type to prevent collisions:

	type contextKey int
*/
package core
