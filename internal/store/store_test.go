// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewStoreFromDSN("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func sampleCases() []model.Case {
	return []model.Case{
		{
			Protocol:     "BO-2026-001",
			ObjectName:   "Bicicleta Caloi",
			Category:     "bicicleta",
			Status:       model.StatusAnalysis,
			OccurredAt:   time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC),
			Location:     "Avenida Paulista, 1500",
			Latitude:     -23.5614,
			Longitude:    -46.6560,
			Neighborhood: "Bela Vista",
		},
		{
			Protocol:   "BO-2026-002",
			ObjectName: "Celular",
			Category:   "eletronico",
			Status:     model.StatusRecovered,
			OccurredAt: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestReplaceAndListCachedCases(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceCachedCases(ctx, sampleCases()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.ListCachedCases(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cached cases, got %d", len(got))
	}
	// newest first
	if got[0].Protocol != "BO-2026-002" {
		t.Errorf("expected newest case first, got %s", got[0].Protocol)
	}
	if got[1].Neighborhood != "Bela Vista" || got[1].Status != model.StatusAnalysis {
		t.Errorf("case fields lost in cache round trip: %+v", got[1])
	}
}

func TestReplaceCachedCases_SwapsNotAppends(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceCachedCases(ctx, sampleCases()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	// second fetch returns just one case
	if err := s.ReplaceCachedCases(ctx, sampleCases()[:1]); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.ListCachedCases(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("cache was appended, not swapped: %d rows", len(got))
	}

	// an empty fetch clears the cache
	if err := s.ReplaceCachedCases(ctx, nil); err != nil {
		t.Fatalf("replace empty: %v", err)
	}
	got, _ = s.ListCachedCases(ctx)
	if len(got) != 0 {
		t.Fatalf("empty fetch did not clear cache: %d rows", len(got))
	}
}

func TestMapPointsCache(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	points := []model.MapPoint{
		{Protocol: "BO-1", Latitude: -23.56, Longitude: -46.65, Category: "celular", Weight: 0.9},
		{Protocol: "BO-2", Latitude: -23.55, Longitude: -46.63, Category: "bicicleta", Weight: 0.4},
	}
	if err := s.ReplaceCachedMapPoints(ctx, points); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.ListCachedMapPoints(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Weight < got[1].Weight {
		t.Error("points not ordered by weight")
	}
}

func TestDraftLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SaveDraft(ctx, model.ObjectDraft{
		Name:         "Notebook",
		Category:     "eletronico",
		SerialNumber: "SN-1234",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == 0 {
		t.Fatal("expected autoincrement id")
	}

	drafts, err := s.ListDrafts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Name != "Notebook" {
		t.Fatalf("draft round trip mismatch: %+v", drafts)
	}

	if err := s.DeleteDraft(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	drafts, _ = s.ListDrafts(ctx)
	if len(drafts) != 0 {
		t.Fatal("draft not deleted")
	}
}

func TestNotificationReadState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.MarkNotificationRead(ctx, 42); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// marking again is a no-op
	if err := s.MarkNotificationRead(ctx, 42); err != nil {
		t.Fatalf("second mark: %v", err)
	}

	ids, err := s.ReadNotificationIDs(ctx)
	if err != nil {
		t.Fatalf("read ids: %v", err)
	}
	if !ids[42] || len(ids) != 1 {
		t.Errorf("unexpected read set: %v", ids)
	}
}

func TestInitDBSetsPackageStore(t *testing.T) {
	if store.IsInitialized() {
		t.Skip("package store already initialized by another test")
	}
	if err := store.InitDB("sqlite", ":memory:"); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { store.SetForTest(nil) })
	if !store.IsInitialized() || store.Get() == nil {
		t.Fatal("InitDB did not set the package store")
	}
}

func TestUnsupportedBackend(t *testing.T) {
	if _, err := store.NewStoreFromDSN("oracle", "dsn"); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}
