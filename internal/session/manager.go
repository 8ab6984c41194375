package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mochilaapp/mochila-client/internal/domain"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseAnonymous      Phase = "anonymous"
	PhaseAuthenticating Phase = "authenticating"
	PhaseAuthenticated  Phase = "authenticated"
)

// Manager owns the in-memory session and keeps the store in sync. It is
// the single source of truth for the bearer token: the API client reads
// the token through Token, and reports rejected tokens through
// TokenRejected, so every collaborator sees the same session without
// ambient globals.
type Manager struct {
	mu      sync.Mutex
	store   *Store
	logger  *slog.Logger
	phase   Phase
	current *domain.Session

	subs    map[int]func(Phase)
	nextSub int
}

// NewManager creates a session manager backed by store. The session
// starts Anonymous; call Restore to pick up a persisted one.
func NewManager(store *Store, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		phase:  PhaseAnonymous,
		subs:   make(map[int]func(Phase)),
	}
}

// Phase returns the current lifecycle phase.
func (m *Manager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Current returns the active session, or nil when Anonymous.
func (m *Manager) Current() *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Token returns the bearer token for outgoing requests, empty when no
// session is active.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// Subscribe registers fn to be called on every phase transition. Returns
// an unsubscribe function.
func (m *Manager) Subscribe(fn func(Phase)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.nextSub
	m.nextSub++
	m.subs[idx] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, idx)
	}
}

// Restore loads a persisted session at startup. No stored session leaves
// the manager Anonymous and is not an error.
func (m *Manager) Restore() error {
	sess, err := m.store.Load()
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = sess
	m.transitionLocked(PhaseAuthenticated)
	return nil
}

// BeginLogin marks a credential exchange in progress. Valid only from
// Anonymous.
func (m *Manager) BeginLogin() {
	m.mu.Lock()
	if m.phase != PhaseAnonymous {
		m.mu.Unlock()
		return
	}
	m.transitionLocked(PhaseAuthenticating)
}

// Establish activates and persists a session after a successful login.
func (m *Manager) Establish(sess *domain.Session) error {
	if err := m.store.Save(sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.mu.Lock()
	m.current = sess
	m.transitionLocked(PhaseAuthenticated)
	return nil
}

// FailLogin returns to Anonymous after a rejected credential exchange.
func (m *Manager) FailLogin() {
	m.mu.Lock()
	if m.phase != PhaseAuthenticating {
		m.mu.Unlock()
		return
	}
	m.transitionLocked(PhaseAnonymous)
}

// SetUser updates the profile on the active session, in memory and in the
// store. No-op when Anonymous.
func (m *Manager) SetUser(user *domain.User) error {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return nil
	}
	m.current.User = user
	m.current.IsVisitor = user.IsVisitor
	m.mu.Unlock()

	return m.store.SaveUser(user)
}

// Logout clears the session and returns to Anonymous.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	m.mu.Lock()
	m.current = nil
	m.transitionLocked(PhaseAnonymous)
	return nil
}

// TokenRejected handles a 401/403 from any request: the token is dead, so
// the session is cleared and subscribers (the navigator) are notified.
// Wired as the API client's rejection callback.
func (m *Manager) TokenRejected() {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	m.current = nil
	if err := m.store.Clear(); err != nil && m.logger != nil {
		m.logger.Warn("clear session after token rejection", "error", err)
	}
	if m.logger != nil {
		m.logger.Info("session cleared, token rejected by server")
	}
	m.transitionLocked(PhaseAnonymous)
}

// transitionLocked sets the phase and notifies subscribers. Caller holds
// m.mu; transitionLocked releases it.
func (m *Manager) transitionLocked(phase Phase) {
	m.phase = phase
	subs := make([]func(Phase), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(phase)
	}
}
