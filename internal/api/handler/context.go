package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/service"
)

// ctxSession extracts the session injected by the Session middleware and
// fast-fails before any service call: a missing session means the middleware
// did not run for this route, which is a wiring bug, not a client error.
func ctxSession(c echo.Context) (*service.Session, error) {
	sess, ok := c.Get("session").(*service.Session)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session not resolved")
	}
	return sess, nil
}

// ctxCart extracts the cart paired with the request's session.
func ctxCart(c echo.Context) (*service.Cart, error) {
	cart, ok := c.Get("cart").(*service.Cart)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "cart not resolved")
	}
	return cart, nil
}
