// Package main provides the entry point for the Mochila client shell.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/mochilaapp/mochila-client/internal/di"
	"github.com/mochilaapp/mochila-client/internal/di/providers"
	"github.com/mochilaapp/mochila-client/internal/logger"
	"github.com/mochilaapp/mochila-client/internal/nav"
)

func main() {
	// Create DI container
	injector := di.NewContainer()

	// Bootstrap shared services and restore any persisted session
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap client: %v\n", err)
		os.Exit(1)
	}

	log := do.MustInvoke[*logger.Logger](injector)
	navigator := do.MustInvoke[*nav.Navigator](injector)

	log.Info("Client ready", "route", string(navigator.Current().Route))

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// The session store uses a wrapper type; close it explicitly
	if storeHandle, err := do.Invoke[*providers.SessionStoreHandle](injector); err == nil {
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close session store", "error", err)
		}
	}

	log.Info("Goodbye")
}
