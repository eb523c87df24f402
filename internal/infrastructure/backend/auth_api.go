package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// signinRequest and signupRequest mirror the backend's auth payloads.
type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type signinResponse struct {
	AccessToken string `json:"accessToken"`
	ID          int    `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

// Signin authenticates against POST /auth/signin. A 401 here means rejected
// credentials, not an expired session, so it propagates without ending the
// caller's session.
func (c *Client) Signin(ctx context.Context, email, password string) (*ports.SigninResult, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/signin", signinRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var res signinResponse
	if err := c.roundTrip("auth_signin", req, &res, true); err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, fmt.Errorf("%w: signin response missing access token", domain.ErrBackend)
	}

	return &ports.SigninResult{
		AccessToken: res.AccessToken,
		ID:          res.ID,
		Email:       res.Email,
		Name:        res.Name,
	}, nil
}

// Signup registers a new account via POST /auth/signup.
func (c *Client) Signup(ctx context.Context, in ports.SignupInput) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/signup", signupRequest{
		Name:            in.Name,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	return c.roundTrip("auth_signup", req, nil, true)
}
