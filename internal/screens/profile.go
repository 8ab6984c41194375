package screens

import (
	"context"
	"log/slog"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/loadable"
	"github.com/mochilaapp/mochila-client/internal/session"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

// ProfileData is the profile payload: the account plus its usage stats,
// fetched in parallel.
type ProfileData = loadable.Pair[*domain.User, *domain.Stats]

// Profile drives the profile screen: account details, stats, profile
// image replacement, and logout.
type Profile struct {
	api      *api.Client
	uploader *api.Uploader
	gallery  device.Gallery
	session  *session.Manager
	validate *validation.Validator
	logger   *slog.Logger

	Data *loadable.Controller[ProfileData]
}

// NewProfile creates the profile controller. Call Data.Mount when the
// screen appears.
func NewProfile(
	client *api.Client,
	uploader *api.Uploader,
	gallery device.Gallery,
	sess *session.Manager,
	validate *validation.Validator,
	logger *slog.Logger,
) *Profile {
	p := &Profile{
		api:      client,
		uploader: uploader,
		gallery:  gallery,
		session:  sess,
		validate: validate,
		logger:   logger,
	}

	p.Data = loadable.New(loadable.Join2(
		client.GetUser,
		client.GetStats,
	), logger)

	return p
}

// Update saves edited account details, refreshes the stored profile, and
// reloads.
func (p *Profile) Update(ctx context.Context, name, email string) error {
	update := domain.ProfileUpdate{Name: name, Email: email}
	if err := p.validate.Validate(update); err != nil {
		return err
	}

	sess := p.session.Current()
	if sess == nil || sess.User == nil {
		return nil
	}
	if err := p.api.UpdateUser(ctx, sess.User.ID, update); err != nil {
		return err
	}

	updated := *sess.User
	updated.Name = name
	updated.Email = email
	if err := p.session.SetUser(&updated); err != nil {
		p.logger.Warn("persist updated profile", "error", err)
	}

	p.Data.Reload()
	return nil
}

// ChangeImage picks a new profile photo, uploads it, points the account at
// the secure URL, and reloads. A refused gallery permission aborts with a
// capability-denied error.
func (p *Profile) ChangeImage(ctx context.Context) error {
	photo, err := p.gallery.Pick(ctx)
	if err != nil {
		return err
	}
	defer photo.Content.Close()

	secureURL, err := p.uploader.Upload(ctx, photo.Filename, photo.Content)
	if err != nil {
		return err
	}
	if err := p.api.UpdateProfileImage(ctx, secureURL); err != nil {
		return err
	}

	sess := p.session.Current()
	if sess != nil && sess.User != nil {
		updated := *sess.User
		updated.UserImg = secureURL
		if err := p.session.SetUser(&updated); err != nil {
			p.logger.Warn("persist profile image", "error", err)
		}
	}

	p.Data.Reload()
	return nil
}

// Logout ends the session. The navigator observes the phase change and
// lands on login.
func (p *Profile) Logout() error {
	return p.session.Logout()
}

// Close releases the screen's controller on unmount.
func (p *Profile) Close() {
	p.Data.Close()
}
