package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/mochilaapp/mochila-client/internal/config"
	"github.com/mochilaapp/mochila-client/internal/logger"
	"github.com/mochilaapp/mochila-client/internal/session"
)

// SessionStoreHandle wraps the session store with shutdown capability.
type SessionStoreHandle struct {
	*session.Store
}

// Shutdown implements do.Shutdownable.
func (h *SessionStoreHandle) Shutdown() error {
	return h.Store.Close()
}

// ProvideSessionStore provides the persisted-session store.
func ProvideSessionStore(i do.Injector) (*SessionStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	store, err := session.NewStore(filepath.Join(cfg.Data.Dir, "session"), log.Logger)
	if err != nil {
		return nil, err
	}
	return &SessionStoreHandle{Store: store}, nil
}

// ProvideSessionManager provides the session manager, restored from the
// store so a previous login survives a restart.
func ProvideSessionManager(i do.Injector) (*session.Manager, error) {
	storeHandle := do.MustInvoke[*SessionStoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	manager := session.NewManager(storeHandle.Store, log.Logger)
	if err := manager.Restore(); err != nil {
		log.Warn("session restore failed, starting anonymous", "error", err)
	}
	return manager, nil
}
