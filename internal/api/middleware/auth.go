package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/core/domain"
	"github.com/painless-lms/lms-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the resolved
// domain.Identity.
const IdentityKey = "identity"

// TokenVerifier decodes a bearer token into the account id it binds.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth is the access guard applied to every protected route:
//
//  1. Requires an "Authorization: Bearer <token>" header.
//  2. Verifies the token signature and expiry.
//  3. Resolves the bound account; a token for a deleted account is rejected.
//  4. Re-checks the approval flag on every request, so revoking approval
//     takes effect on the account's next request even with a live token.
//  5. Attaches the identity (never the password hash) to the context.
func Auth(tokens TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return domain.ErrUnauthenticated
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				// Deleted since issuance, or lookup failure: either way the
				// bearer is not authenticated.
				return domain.ErrUnauthenticated
			}

			if !user.IsApproved {
				return domain.ErrPendingApproval
			}

			c.Set(IdentityKey, user.Identity())
			return next(c)
		}
	}
}
