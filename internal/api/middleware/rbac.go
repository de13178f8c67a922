package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/domain"
)

// RBAC enforces role-based access control on top of Auth. An unauthenticated
// request (no role claim) gets 401; an authenticated caller outside the
// allowed set gets 403. With no roles listed, any authenticated caller passes.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !domain.Admit(role, allowedRoles...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
