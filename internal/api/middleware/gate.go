package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/gate"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// Gate enforces a route's access requirement against the current session.
// The decision is made fresh on every request — the session can change
// between navigations.
func Gate(requirement gate.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := domain.SessionAnonymous
			var user *domain.User
			if sess, ok := c.Get("session").(*service.Session); ok {
				state = sess.State()
				user = sess.User()
			}

			decision := gate.Decide(state, user, requirement, c.Request().URL.Path)
			switch decision.Action {
			case gate.Redirect:
				return c.Redirect(http.StatusSeeOther, decision.Location)
			case gate.Wait:
				c.Response().Header().Set("Retry-After", "1")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session restoring")
			default:
				return next(c)
			}
		}
	}
}
