package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/securebase/user-api/internal/core/domain"
	"github.com/securebase/user-api/internal/core/ports"
)

// userContextKey is where the resolved *domain.User is stored in the echo
// context by Auth and read back by RBAC and the handlers.
const userContextKey = "user"

// Auth verifies the bearer access token and resolves its subject to a live
// user record, which is injected into the request context. A token whose
// user has since been deleted is rejected, closing the
// deleted-but-still-holding-a-valid-token window.
func Auth(tokens ports.TokenIssuer, repo ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}

			userID, err := tokens.VerifyAccessToken(parts[1])
			if err != nil {
				return domain.ErrInvalidToken
			}

			user, err := repo.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrUnauthenticated
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// ActorFromContext returns the user resolved by Auth, or nil when the
// middleware has not run on this route.
func ActorFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
