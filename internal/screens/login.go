package screens

import (
	"context"
	"log/slog"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/nav"
	"github.com/mochilaapp/mochila-client/internal/session"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

// Login drives the login screen: credential login and the visitor
// shortcut. A successful login establishes the session and lands on home.
type Login struct {
	api      *api.Client
	session  *session.Manager
	nav      *nav.Navigator
	validate *validation.Validator
	logger   *slog.Logger
}

// NewLogin creates the login controller.
func NewLogin(client *api.Client, sess *session.Manager, navigator *nav.Navigator, validate *validation.Validator, logger *slog.Logger) *Login {
	return &Login{api: client, session: sess, nav: navigator, validate: validate, logger: logger}
}

// Submit exchanges credentials for a session. Validation failures abort
// before the request; a rejected exchange returns the manager to
// Anonymous with the server's message intact.
func (l *Login) Submit(ctx context.Context, email, password string) error {
	creds := domain.Credentials{Email: email, Password: password}
	if err := l.validate.Validate(creds); err != nil {
		return err
	}

	l.session.BeginLogin()
	result, err := l.api.Login(ctx, creds)
	if err != nil {
		l.session.FailLogin()
		return err
	}

	user := result.User
	sess := &domain.Session{Token: result.Token, User: &user, IsVisitor: user.IsVisitor}
	if err := l.session.Establish(sess); err != nil {
		return err
	}

	l.nav.Reset(nav.RouteHome)
	return nil
}

// SubmitVisitor enters without an account: the visitor token is
// established first, then the visitor profile is fetched with it.
func (l *Login) SubmitVisitor(ctx context.Context) error {
	l.session.BeginLogin()
	token, err := l.api.LoginVisitor(ctx)
	if err != nil {
		l.session.FailLogin()
		return err
	}

	if err := l.session.Establish(&domain.Session{Token: token, IsVisitor: true}); err != nil {
		return err
	}

	// Profile fetch needs the token just established. A failure here is
	// not fatal; the session stands and home refetches the profile.
	user, err := l.api.GetUser(ctx)
	if err != nil {
		l.logger.Warn("visitor profile fetch failed", "error", err)
		l.nav.Reset(nav.RouteHome)
		return nil
	}
	user.IsVisitor = true
	if err := l.session.SetUser(user); err != nil {
		l.logger.Warn("persist visitor profile", "error", err)
	}

	l.nav.Reset(nav.RouteHome)
	return nil
}

// ToRegister navigates to the account creation screen.
func (l *Login) ToRegister() {
	l.nav.Navigate(nav.RouteRegister, nil)
}
