// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/acheiapp/achei/internal/model"
)

// Profile fetches the authenticated citizen's profile.
func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodGet, "/cidadao/perfil", nil, &u, true)
	return u, err
}

// UpdateProfile replaces the editable profile fields. A failure leaves the
// remote profile untouched; the caller keeps its form state either way.
func (c *Client) UpdateProfile(ctx context.Context, u model.User) error {
	return c.do(ctx, http.MethodPut, "/cidadao/perfil", u, nil, true)
}

// DashboardStats fetches the summary counters for the citizen dashboard.
func (c *Client) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var s model.DashboardStats
	err := c.do(ctx, http.MethodGet, "/cidadao/dashboard", nil, &s, true)
	return s, err
}

// RecentActivity fetches the activity feed, newest first.
func (c *Client) RecentActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	err := c.do(ctx, http.MethodGet, "/cidadao/atividade", nil, &entries, true)
	return entries, err
}

// Alerts fetches the active alerts for the citizen's registered addresses.
func (c *Client) Alerts(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	err := c.do(ctx, http.MethodGet, "/cidadao/alertas", nil, &alerts, true)
	return alerts, err
}

// NewObject is the payload for registering a belonging.
type NewObject struct {
	Name         string `json:"nome"`
	Category     string `json:"categoria"`
	Description  string `json:"descricao"`
	SerialNumber string `json:"numero_serie"`
}

// ListObjects fetches the citizen's registered belongings.
func (c *Client) ListObjects(ctx context.Context) ([]model.RegisteredObject, error) {
	var objs []model.RegisteredObject
	err := c.do(ctx, http.MethodGet, "/cidadao/objetos", nil, &objs, true)
	return objs, err
}

// AddObject registers a belonging and returns the stored record.
func (c *Client) AddObject(ctx context.Context, obj NewObject) (model.RegisteredObject, error) {
	var created model.RegisteredObject
	err := c.do(ctx, http.MethodPost, "/cidadao/objetos", obj, &created, true)
	return created, err
}

// DeleteObject removes a belonging from the registry.
func (c *Client) DeleteObject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cidadao/objetos/%d", id), nil, nil, true)
}

// Notifications fetches the user's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	var ns []model.Notification
	err := c.do(ctx, http.MethodGet, "/notificacoes", nil, &ns, true)
	return ns, err
}

// MarkNotificationRead flags one notification as read on the service.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/notificacoes/%d/lida", id), nil, nil, true)
}
