// Package grpc provides gRPC server interceptors that check the registered
// claims of already verified JWTs.
//
// The interceptors do not parse or verify tokens. By default they read claims
// that an upstream interceptor stored with core.SetClaims after verifying the
// token's signature; WithClaimsExtractor replaces that source.
//
// # Basic Usage
//
//	policy, err := validator.NewPolicy(
//	    validator.WithExpectedIssuer("https://issuer.example.com/"),
//	    validator.WithExpectedAudience("my-grpc-api"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	checker, err := core.New(core.WithPolicy(policy))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	interceptor, err := jwtgrpc.New(jwtgrpc.WithCore(checker))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	server := grpc.NewServer(
//	    grpc.ChainUnaryInterceptor(verifyInterceptor, interceptor.UnaryServerInterceptor()),
//	    grpc.ChainStreamInterceptor(verifyStreamInterceptor, interceptor.StreamServerInterceptor()),
//	)
//
// # Error Handling
//
// DefaultErrorHandler maps failures to gRPC status codes:
//
//   - Missing claims, missing or expired exp, nbf and iat failures: Unauthenticated
//   - Issuer, audience and type header mismatches: PermissionDenied
//   - An invalid policy: Internal
//
// # Excluded Methods
//
//	interceptor, _ := jwtgrpc.New(
//	    jwtgrpc.WithCore(checker),
//	    jwtgrpc.WithExcludedMethods("/grpc.health.v1.Health/Check"),
//	)
package grpc
