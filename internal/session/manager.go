// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"sync"

	"github.com/acheiapp/achei/internal/model"
)

// Manager is the single authority on the current session. It is constructed
// once at startup and handed to every component that needs authentication
// state; there is no ambient singleton. Reads from the store happen exactly
// once, on the first Resolve call.
//
// Safe for concurrent use; TUI command goroutines and the CLI share one
// instance.
type Manager struct {
	store *Store

	mu       sync.RWMutex
	resolved bool
	loading  bool
	sess     *model.Session
}

// NewManager creates a manager bound to the given store. The manager starts
// in the loading state until Resolve is called.
func NewManager(store *Store) *Manager {
	return &Manager{store: store, loading: true}
}

// Resolve loads the persisted session. Only the first call hits the store;
// later calls are no-ops. After Resolve returns, Loading reports false.
func (m *Manager) Resolve() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resolved {
		return
	}
	sess, err := m.store.Load()
	if err != nil {
		// An unreadable store behaves like an absent session.
		m.sess = nil
	} else {
		m.sess = sess
	}
	m.resolved = true
	m.loading = false
}

// Loading reports whether the initial store read is still pending.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Current returns the active session, or nil when anonymous or still
// loading. The returned value is a copy; mutating it does not affect the
// manager.
func (m *Manager) Current() *model.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess == nil {
		return nil
	}
	cp := *m.sess
	return &cp
}

// Token returns the bearer token and whether one is present.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess == nil || m.sess.Token == "" {
		return "", false
	}
	return m.sess.Token, true
}

// Login persists the session and then publishes it in memory. If the write
// fails nothing is published, so disk and memory cannot disagree in the
// "token on disk but not in memory" direction either.
func (m *Manager) Login(sess model.Session) error {
	if err := m.store.Save(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Login may happen before Resolve (fresh CLI run); the session we just
	// wrote is authoritative either way.
	m.resolved = true
	m.sess = &sess
	m.loading = false
	return nil
}

// Logout clears the store and the in-memory session. The in-memory state is
// always cleared, even when removing the file fails, so the process never
// keeps acting authenticated after an explicit logout.
func (m *Manager) Logout() error {
	err := m.store.Clear()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = true
	m.sess = nil
	m.loading = false
	return err
}
