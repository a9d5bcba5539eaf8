/*
Package jwtclaims checks the claims of already verified JWTs against a
validator.Policy in net/http servers.

Signature verification stays with the caller: a ClaimsFunc extracts the
request's token, verifies it and returns its decoded claims. The middleware
then runs the policy through core.Core and either calls the next handler with
the claims in the request context or responds through its ErrorHandler.

# Basic Usage

	policy, err := validator.NewPolicy(
	    validator.WithExpectedIssuer("https://auth.example.com/"),
	    validator.WithExpectedAudience("my-api"),
	    validator.WithIgnoreTypeHeader(),
	)
	if err != nil {
	    log.Fatal(err)
	}

	c, err := core.New(
	    core.WithPolicy(policy),
	    core.WithLogger(jwtclaims.NewZapLogger(zapLogger.Sugar())),
	    core.WithMetrics(jwtclaims.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
	)
	if err != nil {
	    log.Fatal(err)
	}

	middleware, err := jwtclaims.New(c, func(r *http.Request) (validator.Claims, error) {
	    tok, err := jwt.ParseRequest(r, jwt.WithKeySet(keySet), jwt.WithValidate(false))
	    if err != nil {
	        return nil, err
	    }
	    return jwxclaims.New(tok, nil), nil
	})
	if err != nil {
	    log.Fatal(err)
	}

	http.Handle("/api", middleware.CheckClaims(apiHandler))

Inside the handler:

	claims, err := core.GetClaims[validator.Claims](r.Context())

# Error Responses

DefaultErrorHandler answers with a JSON body:

  - 400 when the request carries no token
  - 401 when the token fails the policy or the ClaimsFunc cannot verify it
  - 500 for anything else

# Logging

core.Logger is satisfied by *slog.Logger. NewZapLogger, NewZerologLogger and
NewLogrusLogger adapt the other common loggers.

# Framework Integrations

See framework/gin, framework/echo and integrations/grpc.
*/
package jwtclaims
