package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/api/metrics"
	"github.com/webshop/storefront-api/internal/core/domain"
)

// RBAC enforces role-based access control on the request principal. It must
// run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				return domain.ErrAuthenticationRequired
			}
			if !principal.HasRole(allowedRoles...) {
				metrics.AccessDeniedTotal.WithLabelValues(string(principal.Role)).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
