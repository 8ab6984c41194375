package screens

import (
	"context"
	"log/slog"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/nav"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

// Register drives account creation. A successful registration routes back
// to login; the user signs in with the new credentials.
type Register struct {
	api      *api.Client
	nav      *nav.Navigator
	validate *validation.Validator
	logger   *slog.Logger
}

// NewRegister creates the registration controller.
func NewRegister(client *api.Client, navigator *nav.Navigator, validate *validation.Validator, logger *slog.Logger) *Register {
	return &Register{api: client, nav: navigator, validate: validate, logger: logger}
}

// Submit validates and creates the account, then routes to login. Returns
// the server's confirmation message for display.
func (r *Register) Submit(ctx context.Context, name, email, password string) (string, error) {
	reg := domain.Registration{Name: name, Email: email, Password: password}
	if err := r.validate.Validate(reg); err != nil {
		return "", err
	}

	message, err := r.api.Register(ctx, reg)
	if err != nil {
		return "", err
	}

	r.logger.Info("account created", "email", email)
	r.nav.Navigate(nav.RouteLogin, nil)
	return message, nil
}

// ToLogin navigates back to the login screen.
func (r *Register) ToLogin() {
	r.nav.Navigate(nav.RouteLogin, nil)
}
