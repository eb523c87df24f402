package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/api/metrics"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

// AuthHandler owns the sign-in, sign-up and sign-out endpoints. The heavy
// lifting lives in the session service; this layer only binds, validates and
// shapes responses.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type userResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

type sessionResponse struct {
	State string        `json:"state"`
	User  *userResponse `json:"user,omitempty"`
}

func newSessionResponse(state domain.SessionState, user *domain.User) sessionResponse {
	resp := sessionResponse{State: string(state)}
	if user != nil {
		resp.User = &userResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		}
	}
	return resp
}

// Login signs the visitor in against the commerce backend.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Sign-in credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := sess.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, newSessionResponse(domain.SessionAuthenticated, &user))
}

// Register creates an account on the commerce backend and signs the visitor
// in with the new credentials.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := sess.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newSessionResponse(domain.SessionAuthenticated, &user))
}

// Logout ends the authenticated session. The session itself survives as an
// anonymous one; its cart is emptied by the session-end subscription.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := sess.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.SessionsEndedTotal.WithLabelValues("logout").Inc()

	return c.JSON(http.StatusOK, newSessionResponse(domain.SessionAnonymous, nil))
}

// Session reports the current session state and, when authenticated, the
// signed-in user. Clients poll this once at boot instead of decoding tokens
// themselves.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionResponse(sess.State(), sess.User()))
}
