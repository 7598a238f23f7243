package backend

import (
	"context"
	"net/http"

	"hairlab-backoffice/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var res models.LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", nil, creds, &res)
	return res, err
}

// ForgotPassword asks the backend to mail a reset link and returns its message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var res struct {
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/forgot-password", nil, map[string]string{"email": email}, &res)
	return res.Message, err
}
