package jwtginhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// DefaultClaimsKey is the gin context key validated claims are stored under.
const DefaultClaimsKey = "jwt"

var (
	ErrMissingClaims = errors.New("no JWT claims found in context")
	ErrInvalidClaims = errors.New("invalid JWT claims type")
)

// ClaimsFunc returns the verified claims of the request's token, or nil, nil
// when the request carries none.
type ClaimsFunc func(c *gin.Context) (validator.Claims, error)

// GinMiddlewareConfig holds the configuration Options apply to.
type GinMiddlewareConfig struct {
	errorHandler func(*gin.Context, error)
	contextKey   string
}

// NewGinMiddleware creates a Gin middleware that checks the claims returned
// by claimsFunc through checker. Validated claims are stored in the gin
// context under DefaultClaimsKey (see WithContextKey) and in the request
// context for core.GetClaims.
func NewGinMiddleware(checker *core.Core, claimsFunc ClaimsFunc, opts ...Option) gin.HandlerFunc {
	config := &GinMiddlewareConfig{
		errorHandler: DefaultErrorHandler,
		contextKey:   DefaultClaimsKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c *gin.Context) {
		claims, err := claimsFunc(c)
		if err != nil {
			config.errorHandler(c, err)
			c.Abort()
			return
		}

		if err := checker.CheckClaims(c.Request.Context(), claims); err != nil {
			config.errorHandler(c, err)
			c.Abort()
			return
		}

		if claims != nil {
			c.Set(config.contextKey, claims)
			c.Request = c.Request.WithContext(core.SetClaims(c.Request.Context(), claims))
		}

		c.Next()
	}
}

// DefaultErrorHandler responds 400 for missing claims, 500 for an invalid
// policy and 401 otherwise.
func DefaultErrorHandler(c *gin.Context, err error) {
	if errors.Is(err, core.ErrClaimsMissing) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if errors.Is(err, validator.ErrInvalidConfig) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	body := gin.H{"error": err.Error()}
	if code := validator.ErrorCode(err); code != "" {
		body["code"] = code
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

// GetClaims returns the claims stored under contextKey, or under
// DefaultClaimsKey when contextKey is empty.
func GetClaims(c *gin.Context, contextKey string) (validator.Claims, error) {
	if contextKey == "" {
		contextKey = DefaultClaimsKey
	}
	claims, exists := c.Get(contextKey)
	if !exists {
		return nil, ErrMissingClaims
	}

	validatedClaims, ok := claims.(validator.Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	return validatedClaims, nil
}
