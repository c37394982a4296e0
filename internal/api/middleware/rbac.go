package middleware

import (
	"github.com/securebase/user-api/internal/core/domain"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control on routes. It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := ActorFromContext(c)
			if actor == nil {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[actor.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
