package providers

import (
	"github.com/samber/do/v2"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/config"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/logger"
	"github.com/mochilaapp/mochila-client/internal/session"
)

// ProvideAPIClient provides the backend API client, reading its token
// from the session manager and reporting rejected tokens back to it.
func ProvideAPIClient(i do.Injector) (*api.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	manager := do.MustInvoke[*session.Manager](i)

	return api.New(cfg.API.BaseURL, manager, log.Logger,
		api.WithTimeout(cfg.API.Timeout),
		api.OnTokenRejected(manager.TokenRejected),
	)
}

// ProvideUploader provides the image CDN uploader.
func ProvideUploader(i do.Injector) (*api.Uploader, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return api.NewUploader(cfg.Upload.URL, log.Logger), nil
}

// ProvidePlacesClient provides the places-autocomplete client.
func ProvidePlacesClient(i do.Injector) (*device.PlacesClient, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return device.NewPlacesClient(cfg.Places.BaseURL, cfg.Places.APIKey, log.Logger), nil
}
