package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// RBAC admits only identities whose role is explicitly listed. Roles do not
// form a hierarchy: an admin is not admitted to an instructor-only route
// unless "admin" is listed too.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
