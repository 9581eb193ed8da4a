package session

import (
	"context"

	"github.com/siakad-id/siakad/core"
)

type (
	// Authenticator exchanges credentials for a session with the remote API.
	Authenticator interface {
		Login(ctx context.Context, creds Credentials, deviceName string) (Identity, string, error)
		Register(ctx context.Context, reg Registration) error
		Logout(ctx context.Context) error
	}

	Service struct {
		store  *Store
		auth   Authenticator
		logger core.Logger
	}
)

func NewService(store *Store, auth Authenticator, logger core.Logger) *Service {
	return &Service{store: store, auth: auth, logger: logger}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.Validate.Struct(c)
}

// Registration contains information needed to create a new account.
type Registration struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func (r *Registration) Validate() error {
	r.Name = core.CleanString(r.Name)
	r.Email = core.CleanString(r.Email, true /* lower */)
	return core.Validate.Struct(r)
}

// Login authenticates against the remote API and populates the store.
func (svc *Service) Login(ctx context.Context, creds Credentials) (Identity, error) {
	if err := creds.Validate(); err != nil {
		return Identity{}, err
	}
	idt, token, err := svc.auth.Login(ctx, creds, svc.store.DeviceName())
	if err != nil {
		return Identity{}, err
	}
	if err = svc.store.Set(idt, token); err != nil {
		return Identity{}, err
	}
	return idt, nil
}

func (svc *Service) Register(ctx context.Context, reg Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	return svc.auth.Register(ctx, reg)
}

// Logout revokes the remote token best-effort, then always clears the
// local session.
func (svc *Service) Logout(ctx context.Context) {
	if svc.store.IsAuthenticated() {
		if err := svc.auth.Logout(ctx); err != nil {
			svc.logger.Warn("session: remote logout failed", err)
		}
	}
	svc.store.Clear()
}
