// Package session persists and manages the authenticated session: the
// bearer token plus the signed-in user's profile, stored locally so the
// app restores its session across restarts.
package session

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/mochilaapp/mochila-client/internal/domain"
)

// Fixed keys; there is at most one session per install.
const (
	tokenKey = "session:token"
	userKey  = "session:user"
)

// ErrNoSession is returned when the store holds no persisted session.
var ErrNoSession = errors.New("no stored session")

// Store is the Badger-backed persistence layer for the session.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// NewStore opens (or creates) the session database at path.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if logger != nil {
		logger.Debug("session store opened", "path", path)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists the session, replacing any previous one. A session
// without a profile (visitor before the profile fetch) stores the token
// alone.
func (s *Store) Save(sess *domain.Session) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(tokenKey), []byte(sess.Token)); err != nil {
			return err
		}
		if sess.User == nil {
			return txn.Delete([]byte(userKey))
		}
		user, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		return txn.Set([]byte(userKey), user)
	})
}

// Load restores the persisted session. Returns ErrNoSession when no token
// is stored. A token without a readable user profile still restores; the
// profile is refetched on the next load.
func (s *Store) Load() (*domain.Session, error) {
	var sess domain.Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tokenKey))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			sess.Token = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get([]byte(userKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var user domain.User
			if err := json.Unmarshal(val, &user); err != nil {
				if s.logger != nil {
					s.logger.Warn("stored user profile unreadable, dropping", "error", err)
				}
				return nil
			}
			sess.User = &user
			sess.IsVisitor = user.IsVisitor
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &sess, nil
}

// SaveUser updates only the stored profile, e.g. after a profile edit.
func (s *Store) SaveUser(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(userKey), data)
	})
}

// Clear removes the persisted session.
func (s *Store) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(tokenKey)); err != nil {
			return err
		}
		return txn.Delete([]byte(userKey))
	})
}
