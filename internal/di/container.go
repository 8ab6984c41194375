// Package di provides dependency injection configuration for the app.
package di

import (
	"github.com/samber/do/v2"

	"github.com/mochilaapp/mochila-client/internal/config"
	"github.com/mochilaapp/mochila-client/internal/di/providers"
	"github.com/mochilaapp/mochila-client/internal/logger"
	"github.com/mochilaapp/mochila-client/internal/nav"
	"github.com/mochilaapp/mochila-client/internal/screens"
	"github.com/mochilaapp/mochila-client/internal/session"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Session layer
	do.Provide(injector, providers.ProvideSessionStore)
	do.Provide(injector, providers.ProvideSessionManager)

	// Network clients
	do.Provide(injector, providers.ProvideAPIClient)
	do.Provide(injector, providers.ProvideUploader)
	do.Provide(injector, providers.ProvidePlacesClient)

	// Shell
	do.Provide(injector, providers.ProvideNavigator)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideScreenFactory)

	return injector
}

// Bootstrap initializes the shared services and wires the session's phase
// transitions into the navigator: a session ending anywhere lands on the
// login screen.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	manager := do.MustInvoke[*session.Manager](injector)
	navigator := do.MustInvoke[*nav.Navigator](injector)
	_ = do.MustInvoke[*screens.Factory](injector)

	manager.Subscribe(func(phase session.Phase) {
		if phase == session.PhaseAnonymous {
			navigator.SessionEnded()
		}
	})

	// A restored session skips the get-started flow.
	if manager.Phase() == session.PhaseAuthenticated {
		navigator.Reset(nav.RouteHome)
	}

	return nil
}
