package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wellnesshub/employee-api/internal/core/ports"
)

// Context keys populated by Authenticate for the remainder of the request.
const (
	ContextIdentity  = "identity"
	ContextAuthority = "authority"
	ContextUsername  = "username"
)

// publicPaths are served without authentication regardless of header contents.
var publicPaths = map[string]struct{}{
	"/login":    {},
	"/register": {},
}

// Authenticate establishes the caller's identity from a bearer token.
//
// Public paths bypass the whole pipeline. Otherwise the Authorization header
// is parsed on every request; when a "Bearer " token is present its subject
// is extracted and, unless an identity is already bound to this request, the
// full identity is resolved and the token revalidated against it before
// binding identity and authority into the request context. Control always
// continues to the next stage — rejecting unauthenticated requests is the
// access-decision layer's job. Any verification failure along the way is
// surfaced uniformly as 401.
func Authenticate(tokens ports.TokenService, resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, public := publicPaths[c.Path()]; public {
				return next(c)
			}

			var token, username string
			authHeader := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
				subject, err := tokens.ExtractSubject(token)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				username = subject
			}

			if username != "" && c.Get(ContextAuthority) == nil {
				identity, err := resolver.LoadByEmail(c.Request().Context(), username)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}

				valid, err := tokens.IsValid(token, identity.Username)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				if valid {
					c.Set(ContextIdentity, identity)
					c.Set(ContextAuthority, identity.Authority)
					c.Set(ContextUsername, identity.Username)
				}
			}

			return next(c)
		}
	}
}
