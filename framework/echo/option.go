package jwtechohandler

import "github.com/labstack/echo/v4"

// Option is a function that configures the Echo middleware
type Option func(*echoMiddlewareConfig)

// WithErrorHandler sets a custom error handler
func WithErrorHandler(handler func(echo.Context, error) error) Option {
	return func(cfg *echoMiddlewareConfig) {
		cfg.errorHandler = handler
	}
}

// WithContextKey sets a custom context key for storing claims
func WithContextKey(key string) Option {
	return func(cfg *echoMiddlewareConfig) {
		cfg.contextKey = key
	}
}
