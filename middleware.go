package jwtclaims

import (
	"net/http"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// ClaimsFunc hands the middleware the claims of the request's token.
//
// It is the caller's verification pipeline: it extracts the token, verifies
// its signature and returns the decoded claims. It returns nil, nil when the
// request carries no token. Returning a typed nil pointer as a non-nil
// validator.Claims is a programming error.
type ClaimsFunc func(r *http.Request) (validator.Claims, error)

// ExclusionUrlHandler is a function that takes in a http.Request and returns
// true if the request should be excluded from claims validation.
type ExclusionUrlHandler func(r *http.Request) bool

// Middleware checks the claims of every request against a policy.
type Middleware struct {
	core                *core.Core
	claimsFunc          ClaimsFunc
	errorHandler        ErrorHandler
	validateOnOptions   bool
	exclusionUrlHandler ExclusionUrlHandler
}

// New constructs a new Middleware around c. claimsFunc supplies the verified
// claims of each request.
//
// Example:
//
//	policy, _ := validator.NewPolicy(validator.WithExpectedAudience("my-api"), validator.WithIgnoreIssuer())
//	c, _ := core.New(core.WithPolicy(policy))
//	middleware, err := jwtclaims.New(c, verifyRequest)
//	if err != nil {
//	    log.Fatalf("failed to create middleware: %v", err)
//	}
//	http.Handle("/api", middleware.CheckClaims(apiHandler))
func New(c *core.Core, claimsFunc ClaimsFunc, opts ...Option) (*Middleware, error) {
	if c == nil {
		return nil, ErrCoreNil
	}
	if claimsFunc == nil {
		return nil, ErrClaimsFuncNil
	}

	m := &Middleware{
		core:              c,
		claimsFunc:        claimsFunc,
		errorHandler:      DefaultErrorHandler,
		validateOnOptions: true,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// CheckClaims is the main Middleware function. It is passed a http.Handler
// which will be called if the claims pass validation. The claims are stored
// in the request context and can be read with core.GetClaims.
func (m *Middleware) CheckClaims(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.validateOnOptions && r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if m.exclusionUrlHandler != nil && m.exclusionUrlHandler(r) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.claimsFunc(r)
		if err != nil {
			m.errorHandler(w, r, &invalidError{details: err})
			return
		}

		if err := m.core.CheckClaims(r.Context(), claims); err != nil {
			m.errorHandler(w, r, err)
			return
		}

		if claims != nil {
			r = r.Clone(core.SetClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}
