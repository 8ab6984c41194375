package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/config"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/logger"
	"github.com/mochilaapp/mochila-client/internal/nav"
	"github.com/mochilaapp/mochila-client/internal/screens"
	"github.com/mochilaapp/mochila-client/internal/session"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

// ProvideNavigator provides the route stack, gated on the session.
func ProvideNavigator(i do.Injector) (*nav.Navigator, error) {
	manager := do.MustInvoke[*session.Manager](i)
	log := do.MustInvoke[*logger.Logger](i)

	return nav.New(manager, log.Logger), nil
}

// ProvideValidator provides the form validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideScreenFactory provides the screen controller factory with the
// host's device bindings.
func ProvideScreenFactory(i do.Injector) (*screens.Factory, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return &screens.Factory{
		API:      do.MustInvoke[*api.Client](i),
		Uploader: do.MustInvoke[*api.Uploader](i),
		Places:   do.MustInvoke[*device.PlacesClient](i),
		Camera:   device.NoCamera{},
		Gallery:  device.DirGallery{Dir: filepath.Join(cfg.Data.Dir, "gallery")},
		Locator:  device.NoLocator{},
		Session:  do.MustInvoke[*session.Manager](i),
		Nav:      do.MustInvoke[*nav.Navigator](i),
		Validate: do.MustInvoke[*validation.Validator](i),
		Debounce: cfg.Search.Debounce,
		Logger:   log.Logger,
	}, nil
}
