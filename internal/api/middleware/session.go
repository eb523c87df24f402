package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/infrastructure/backend"
)

// SessionCookie is the opaque session id issued to each browser.
const SessionCookie = "storefront_session"

// Session resolves the request's session and cart and injects them into the
// echo context under "session" and "cart". It also threads the session's
// credentials into the request context so outgoing backend calls carry the
// bearer header and the 401 hook can end the session.
func Session(manager *service.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie.Value
			}

			entry := manager.Resolve(c.Request().Context(), id)

			if entry.Session.ID() != id {
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    entry.Session.ID(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set("session", entry.Session)
			c.Set("cart", entry.Cart)

			ctx := backend.WithCredentials(c.Request().Context(), entry.Session)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
