package httpserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const cartCookieName = "cartSession"

const cartCookieTTL = 30 * 24 * time.Hour

// cartSession returns the caller's cart session id, minting a new cookie
// when none is present. The cookie is what makes the cart survive page
// reloads; it is never shared across devices.
func cartSession(c echo.Context) string {
	if ck, err := c.Cookie(cartCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(cartCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}
