package middleware

import (
	"net/http"
	"strings"

	"github.com/Breezy-Reese/hotel/internal/auth"
	"github.com/labstack/echo/v4"
)

const (
	// ContextAdminID is set on the echo context for gated handlers.
	ContextAdminID = "admin_id"
	// ContextToken carries the raw bearer token so logout can revoke it.
	ContextToken = "admin_token"
)

// AdminAuth gates admin endpoints on a valid, unrevoked bearer token.
func AdminAuth(tokens *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(header, prefix)

			claims, err := tokens.Verify(c.Request().Context(), raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or revoked token")
			}

			c.Set(ContextAdminID, claims.AdminID)
			c.Set(ContextToken, raw)
			return next(c)
		}
	}
}
