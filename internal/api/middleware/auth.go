package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/booknest/booknest-api/internal/core/domain"
	"github.com/booknest/booknest-api/internal/core/ports"
)

// IdentityKey is the echo context key the request identity is stored under.
const IdentityKey = "identity"

// Auth extracts a bearer token from the Authorization header, verifies it, and
// stores the resulting Identity in the request context. Every verification
// failure (missing header, malformed header, invalid or expired token)
// collapses to the anonymous identity rather than an error; services that
// require authentication reject anonymous identities themselves.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(IdentityKey, domain.Anonymous)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return next(c)
			}

			c.Set(IdentityKey, domain.Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
				Email:    claims.Email,
			})
			return next(c)
		}
	}
}
