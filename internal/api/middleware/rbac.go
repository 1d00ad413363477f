package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellnesshub/employee-api/internal/core/domain"
)

// RequireRole gates an operation on the caller's bound authority matching
// exactly "ROLE_" + role. There is no role hierarchy: an ADMIN token does not
// satisfy an EMPLOYEE-only route. A request with no bound identity is
// rejected the same way, before the handler runs.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	required := domain.AuthorityPrefix + string(role)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authority, _ := c.Get(ContextAuthority).(string)
			if authority != required {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}
