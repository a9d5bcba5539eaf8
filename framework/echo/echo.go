package jwtechohandler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// DefaultClaimsKey is the echo context key validated claims are stored under.
const DefaultClaimsKey = "jwt"

var (
	ErrMissingClaims = errors.New("no JWT claims found in context")
	ErrInvalidClaims = errors.New("invalid JWT claims type")
)

// ClaimsFunc returns the verified claims of the request's token, or nil, nil
// when the request carries none.
type ClaimsFunc func(c echo.Context) (validator.Claims, error)

// echoMiddlewareConfig holds all configuration for the middleware
type echoMiddlewareConfig struct {
	errorHandler func(echo.Context, error) error
	contextKey   string
}

// NewEchoMiddleware creates an Echo middleware that checks the claims returned
// by claimsFunc through checker.
func NewEchoMiddleware(checker *core.Core, claimsFunc ClaimsFunc, opts ...Option) echo.MiddlewareFunc {
	config := &echoMiddlewareConfig{
		errorHandler: DefaultErrorHandler,
		contextKey:   DefaultClaimsKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFunc(c)
			if err != nil {
				return config.errorHandler(c, err)
			}

			if err := checker.CheckClaims(c.Request().Context(), claims); err != nil {
				return config.errorHandler(c, err)
			}

			if claims != nil {
				c.Set(config.contextKey, claims)
				c.SetRequest(c.Request().WithContext(core.SetClaims(c.Request().Context(), claims)))
			}

			return next(c)
		}
	}
}

// DefaultErrorHandler responds 400 for missing claims, 500 for an invalid
// policy and 401 otherwise.
func DefaultErrorHandler(c echo.Context, err error) error {
	if errors.Is(err, core.ErrClaimsMissing) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if errors.Is(err, validator.ErrInvalidConfig) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	body := map[string]string{"error": err.Error()}
	if code := validator.ErrorCode(err); code != "" {
		body["code"] = code
	}
	return c.JSON(http.StatusUnauthorized, body)
}

// GetClaims returns the claims stored under contextKey, or under
// DefaultClaimsKey when contextKey is empty.
func GetClaims(c echo.Context, contextKey string) (validator.Claims, error) {
	if contextKey == "" {
		contextKey = DefaultClaimsKey
	}

	value := c.Get(contextKey)
	if value == nil {
		return nil, ErrMissingClaims
	}

	claims, ok := value.(validator.Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
