package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekarimov/restoran/internal/tokens"
)

type Middleware struct {
	JWTSecret []byte
}

func New(secret []byte) *Middleware {
	return &Middleware{JWTSecret: secret}
}

// RequireAdmin gates dashboard routes behind a valid access cookie with
// the admin role.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie("accessToken")
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(cookie.Value, m.JWTSecret)
		if err != nil || claims == nil {
			c.SetCookie(tokens.DeleteCookie("accessToken", "/"))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		if claims.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}

		c.Set("admin_id", claims.Subject)
		return next(c)
	}
}
