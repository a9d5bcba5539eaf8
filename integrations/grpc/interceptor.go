package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"

	"github.com/auth0/go-jwt-claims/core"
)

// ErrCoreRequired is returned by New when no core was configured.
var ErrCoreRequired = errors.New("core is required, use WithCore option")

// JWTInterceptor checks the claims of already verified tokens for gRPC servers.
type JWTInterceptor struct {
	core            *core.Core
	claimsExtractor ClaimsExtractor
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	logger          Logger
}

// New creates a new gRPC claims interceptor with the provided options.
// WithCore option is required.
func New(opts ...Option) (*JWTInterceptor, error) {
	interceptor := &JWTInterceptor{
		claimsExtractor: ContextClaimsExtractor,
		errorHandler:    DefaultErrorHandler,
		excludedMethods: make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	if interceptor.core == nil {
		return nil, ErrCoreRequired
	}

	return interceptor, nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that checks
// the claims of each call and makes them available in the handler context.
func (i *JWTInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if i.excludedMethods[info.FullMethod] {
			if i.logger != nil {
				i.logger.Debug("skipping claims validation for excluded method",
					"method", info.FullMethod)
			}
			return handler(ctx, req)
		}

		validatedCtx, err := i.validateRequest(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}

		return handler(validatedCtx, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that checks
// the claims once per stream and makes them available in the stream context.
func (i *JWTInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excludedMethods[info.FullMethod] {
			if i.logger != nil {
				i.logger.Debug("skipping claims validation for excluded method",
					"method", info.FullMethod)
			}
			return handler(srv, ss)
		}

		validatedCtx, err := i.validateRequest(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{
			ServerStream: ss,
			ctx:          validatedCtx,
		})
	}
}

func (i *JWTInterceptor) validateRequest(ctx context.Context, method string) (context.Context, error) {
	claims, err := i.claimsExtractor(ctx)
	if err != nil {
		if i.logger != nil {
			i.logger.Error("failed to extract claims",
				"error", err,
				"method", method)
		}
		return ctx, i.errorHandler(err)
	}

	if err := i.core.CheckClaims(ctx, claims); err != nil {
		if i.logger != nil {
			i.logger.Warn("claims validation failed",
				"error", err,
				"method", method)
		}
		return ctx, i.errorHandler(err)
	}

	if claims != nil {
		ctx = core.SetClaims(ctx, claims)
	}

	return ctx, nil
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context with the checked claims.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
