package httpapi

import (
	"context"
	"net/http"

	"github.com/siakad-id/siakad/core/session"
)

type authRepository struct {
	c *Client
}

var _ session.Authenticator = (*authRepository)(nil) // interface compliance check

func NewAuthRepository(c *Client) session.Authenticator {
	return &authRepository{c: c}
}

// Login exchanges credentials for a token. The authoritative contract is
// POST /auth/login with the token and user nested under "data".
func (repo *authRepository) Login(ctx context.Context, creds session.Credentials, deviceName string) (session.Identity, string, error) {
	payload := struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		DeviceName string `json:"device_name"`
	}{
		Email:      creds.Email,
		Password:   creds.Password,
		DeviceName: deviceName,
	}

	var env dataEnvelope[struct {
		Token string           `json:"token"`
		User  session.Identity `json:"user"`
	}]
	if err := repo.c.sendJSON(ctx, http.MethodPost, "/auth/login", payload, &env); err != nil {
		return session.Identity{}, "", err
	}
	return env.Data.User, env.Data.Token, nil
}

func (repo *authRepository) Register(ctx context.Context, reg session.Registration) error {
	return repo.c.sendJSON(ctx, http.MethodPost, "/auth/register", reg, nil)
}

// Logout revokes the current token remotely.
func (repo *authRepository) Logout(ctx context.Context) error {
	return repo.c.sendJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
