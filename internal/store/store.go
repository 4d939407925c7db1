// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package store is the local cache layer of the Achei client. It keeps the
// last fetched cases and map points so the case list and the incident map
// still render offline, plus object-registration drafts and notification
// read-state. It abstracts the underlying database (SQLite by default,
// PostgreSQL or MySQL for shared precinct workstations) behind a consistent
// interface.
package store // import "github.com/acheiapp/achei/internal/store"

import (
	"context"
	"fmt"

	"github.com/acheiapp/achei/internal/model"
)

// Store is the local cache contract used by the UI layers.
type Store interface {
	// Cases
	ReplaceCachedCases(ctx context.Context, cases []model.Case) error
	ListCachedCases(ctx context.Context) ([]model.Case, error)

	// Map points
	ReplaceCachedMapPoints(ctx context.Context, points []model.MapPoint) error
	ListCachedMapPoints(ctx context.Context) ([]model.MapPoint, error)

	// Object drafts
	SaveDraft(ctx context.Context, draft model.ObjectDraft) (int64, error)
	ListDrafts(ctx context.Context) ([]model.ObjectDraft, error)
	DeleteDraft(ctx context.Context, id int64) error

	// Notification read-state mirror
	MarkNotificationRead(ctx context.Context, id int64) error
	ReadNotificationIDs(ctx context.Context) (map[int64]bool, error)

	// Close releases the underlying connections.
	Close(ctx context.Context) error
}

// package-level store, set by InitDB. The CLI and TUI run single-process,
// so one shared handle mirrors how the rest of the app treats the cache.
var store Store

// InitDB initializes the cache database for the given type and DSN, runs
// pending migrations and sets the package-level store.
func InitDB(dbType, dsn string) error {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize cache store: %w", err)
	}
	store = s
	return nil
}

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// Get returns the package-level store. Callers must have run InitDB.
func Get() Store {
	return store
}

// SetForTest swaps the package-level store and returns a restore func.
func SetForTest(s Store) func() {
	prev := store
	store = s
	return func() { store = prev }
}
