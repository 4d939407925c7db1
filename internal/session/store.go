// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package session holds the client-side authentication state: a durable
// store for the bearer token plus user profile, and a manager that resolves,
// publishes and clears that state for the rest of the application.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
)

// sessionFileName is the single document holding token and user together.
const sessionFileName = "session.json"

// Store persists the session under the user config directory. Token and
// profile are written as one JSON document with an atomic rename, so a
// partially written session can never be observed.
type Store struct {
	path string
}

// NewStore creates a store rooted at the user config directory
// (e.g. ~/.config/achei/session.json).
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, "achei", sessionFileName)), nil
}

// NewStoreAt creates a store for an explicit file path. Used by tests and
// by the --session-file override.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Save writes the session to disk. The document is written to a temp file
// in the same directory and renamed into place.
func (s *Store) Save(sess model.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), sessionFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Load returns the persisted session, or nil when none exists. A malformed
// or incomplete file is treated as "logged out": it is discarded and nil is
// returned, never an error the caller has to handle.
func (s *Store) Load() (*model.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logging.Debugf("session: discarding malformed session file: %v", err)
		_ = os.Remove(s.path)
		return nil, nil
	}
	// A session without a token is no session; self-heal the same way.
	if sess.Token == "" {
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &sess, nil
}

// Clear removes the persisted session. A missing file is success.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
