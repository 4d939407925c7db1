// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/acheiapp/achei/internal/model"
)

// CachedCaseModel maps the cached_cases table for Bun queries.
type CachedCaseModel struct {
	bun.BaseModel `bun:"table:cached_cases"`
	Protocol      string    `bun:"protocol,pk"`
	ObjectName    string    `bun:"object_name"`
	Category      string    `bun:"category"`
	Description   string    `bun:"description"`
	Status        string    `bun:"status"`
	OccurredAt    time.Time `bun:"occurred_at"`
	Location      string    `bun:"location"`
	Latitude      float64   `bun:"latitude"`
	Longitude     float64   `bun:"longitude"`
	Neighborhood  string    `bun:"neighborhood"`
	FetchedAt     time.Time `bun:"fetched_at"`
}

// CachedMapPointModel maps the cached_map_points table.
type CachedMapPointModel struct {
	bun.BaseModel `bun:"table:cached_map_points"`
	ID            int64   `bun:"id,pk,autoincrement"`
	Protocol      string  `bun:"protocol"`
	Latitude      float64 `bun:"latitude"`
	Longitude     float64 `bun:"longitude"`
	Category      string  `bun:"category"`
	Weight        float64 `bun:"weight"`
}

// ObjectDraftModel maps the object_drafts table.
type ObjectDraftModel struct {
	bun.BaseModel `bun:"table:object_drafts"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Name          string    `bun:"name"`
	Category      string    `bun:"category"`
	Description   string    `bun:"description"`
	SerialNumber  string    `bun:"serial_number"`
	CreatedAt     time.Time `bun:"created_at"`
}

// NotificationReadModel maps the notification_reads table.
type NotificationReadModel struct {
	bun.BaseModel  `bun:"table:notification_reads"`
	NotificationID int64     `bun:"notification_id,pk"`
	ReadAt         time.Time `bun:"read_at"`
}

// bunStore is the shared Bun implementation behind the per-backend types.
type bunStore struct {
	bun *bun.DB
}

// SqliteStore backs the cache with the embedded SQLite database. This is
// the default for citizen installs.
type SqliteStore struct{ bunStore }

// PostgresStore backs the cache with a shared PostgreSQL database, for
// precinct workstations pointing at one DSN.
type PostgresStore struct{ bunStore }

// MySQLStore backs the cache with a shared MySQL database.
type MySQLStore struct{ bunStore }

func (s *bunStore) Close(ctx context.Context) error {
	return s.bun.Close()
}

// ReplaceCachedCases swaps the whole cases cache for the latest fetch in a
// single transaction, so readers never see a half-refreshed cache.
func (s *bunStore) ReplaceCachedCases(ctx context.Context, cases []model.Case) error {
	now := time.Now()
	rows := make([]CachedCaseModel, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, CachedCaseModel{
			Protocol:     c.Protocol,
			ObjectName:   c.ObjectName,
			Category:     c.Category,
			Description:  c.Description,
			Status:       string(c.Status),
			OccurredAt:   c.OccurredAt,
			Location:     c.Location,
			Latitude:     c.Latitude,
			Longitude:    c.Longitude,
			Neighborhood: c.Neighborhood,
			FetchedAt:    now,
		})
	}

	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*CachedCaseModel)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return MapDBError(err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return MapDBError(err)
		}
		return nil
	})
}

func (s *bunStore) ListCachedCases(ctx context.Context) ([]model.Case, error) {
	var rows []CachedCaseModel
	if err := s.bun.NewSelect().Model(&rows).Order("occurred_at DESC").Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	cases := make([]model.Case, 0, len(rows))
	for _, r := range rows {
		cases = append(cases, model.Case{
			Protocol:     r.Protocol,
			ObjectName:   r.ObjectName,
			Category:     r.Category,
			Description:  r.Description,
			Status:       model.CaseStatus(r.Status),
			OccurredAt:   r.OccurredAt,
			Location:     r.Location,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
			Neighborhood: r.Neighborhood,
		})
	}
	return cases, nil
}

// ReplaceCachedMapPoints swaps the map-point cache for the latest fetch.
func (s *bunStore) ReplaceCachedMapPoints(ctx context.Context, points []model.MapPoint) error {
	rows := make([]CachedMapPointModel, 0, len(points))
	for _, p := range points {
		rows = append(rows, CachedMapPointModel{
			Protocol:  p.Protocol,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Category:  p.Category,
			Weight:    p.Weight,
		})
	}

	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*CachedMapPointModel)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return MapDBError(err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return MapDBError(err)
		}
		return nil
	})
}

func (s *bunStore) ListCachedMapPoints(ctx context.Context) ([]model.MapPoint, error) {
	var rows []CachedMapPointModel
	if err := s.bun.NewSelect().Model(&rows).Order("weight DESC").Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	points := make([]model.MapPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, model.MapPoint{
			Protocol:  r.Protocol,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Category:  r.Category,
			Weight:    r.Weight,
		})
	}
	return points, nil
}

// SaveDraft stores an object-registration draft and returns its ID.
func (s *bunStore) SaveDraft(ctx context.Context, draft model.ObjectDraft) (int64, error) {
	row := ObjectDraftModel{
		Name:         draft.Name,
		Category:     draft.Category,
		Description:  draft.Description,
		SerialNumber: draft.SerialNumber,
		CreatedAt:    time.Now(),
	}
	if _, err := s.bun.NewInsert().Model(&row).Exec(ctx); err != nil {
		return 0, MapDBError(err)
	}
	return row.ID, nil
}

func (s *bunStore) ListDrafts(ctx context.Context) ([]model.ObjectDraft, error) {
	var rows []ObjectDraftModel
	if err := s.bun.NewSelect().Model(&rows).Order("created_at DESC").Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	drafts := make([]model.ObjectDraft, 0, len(rows))
	for _, r := range rows {
		drafts = append(drafts, model.ObjectDraft{
			ID:           r.ID,
			Name:         r.Name,
			Category:     r.Category,
			Description:  r.Description,
			SerialNumber: r.SerialNumber,
			CreatedAt:    r.CreatedAt,
		})
	}
	return drafts, nil
}

func (s *bunStore) DeleteDraft(ctx context.Context, id int64) error {
	_, err := s.bun.NewDelete().Model((*ObjectDraftModel)(nil)).Where("id = ?", id).Exec(ctx)
	return MapDBError(err)
}

// MarkNotificationRead records the read flag locally. Marking twice is a
// no-op, not an error.
func (s *bunStore) MarkNotificationRead(ctx context.Context, id int64) error {
	row := NotificationReadModel{NotificationID: id, ReadAt: time.Now()}
	err := MapDBError(func() error {
		_, err := s.bun.NewInsert().Model(&row).Exec(ctx)
		return err
	}())
	if err == ErrDuplicate {
		return nil
	}
	return err
}

func (s *bunStore) ReadNotificationIDs(ctx context.Context) (map[int64]bool, error) {
	var rows []NotificationReadModel
	if err := s.bun.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	ids := make(map[int64]bool, len(rows))
	for _, r := range rows {
		ids[r.NotificationID] = true
	}
	return ids, nil
}
