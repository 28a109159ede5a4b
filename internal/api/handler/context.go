package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/api/middleware"
	"github.com/painless-lms/lms-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the guard ran; a handler reached without it treats the
// request as unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
