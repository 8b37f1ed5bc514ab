package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/booknest/booknest-api/internal/api/middleware"
	"github.com/booknest/booknest-api/internal/core/domain"
)

// ctxIdentity extracts the identity the Auth middleware stored on the request.
// A request that never passed through the middleware reads as anonymous, which
// downstream services reject where authentication is required.
func ctxIdentity(c echo.Context) domain.Identity {
	identity, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	return identity
}
