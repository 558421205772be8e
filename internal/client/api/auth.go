package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
)

// AuthAPI covers /auth/. Passwords are sent as given; transport security is
// the deployment's concern.
type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a token: POST /auth/login/.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.c.do(ctx, "Login", http.MethodPost, "/auth/login/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its first token:
// POST /auth/register/.
func (a *AuthAPI) Register(ctx context.Context, email, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.RegisterRequest{Email: email, Username: username, Password: password}
	if err := a.c.do(ctx, "Register", http.MethodPost, "/auth/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyToken returns the user owning the current token: GET /auth/verify/.
func (a *AuthAPI) VerifyToken(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.c.do(ctx, "VerifyToken", http.MethodGet, "/auth/verify/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
