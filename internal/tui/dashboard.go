// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
)

// dashboardDataMsg carries the three dashboard loads. Partial failures keep
// whatever did load.
type dashboardDataMsg struct {
	stats    *model.DashboardStats
	activity []model.ActivityEntry
	alerts   []model.Alert
	err      error
}

// dashboardModel shows the citizen summary: counters, recent activity and
// area alerts.
type dashboardModel struct {
	deps Deps

	loading  bool
	stats    *model.DashboardStats
	activity []model.ActivityEntry
	alerts   []model.Alert
	errMsg   string
}

func newDashboardModel(deps Deps) dashboardModel {
	return dashboardModel{deps: deps, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	apiClient := m.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var out dashboardDataMsg
		stats, err := apiClient.DashboardStats(ctx)
		if err != nil {
			out.err = err
		} else {
			out.stats = &stats
		}
		if activity, err := apiClient.RecentActivity(ctx); err == nil {
			out.activity = activity
		} else if out.err == nil {
			out.err = err
		}
		if alerts, err := apiClient.Alerts(ctx); err == nil {
			out.alerts = alerts
		} else if out.err == nil {
			out.err = err
		}
		return out
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.stats = msg.stats
		m.activity = msg.activity
		m.alerts = msg.alerts
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.Init()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	s := titleStyle.Render(i18n.T("dashboard.title")) + "\n\n"
	if m.loading {
		return s + i18n.T("common.loading")
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n\n"
	}
	if m.stats != nil {
		s += fmt.Sprintf("%s: %d\n", i18n.T("dashboard.objects"), m.stats.RegisteredObjects)
		s += fmt.Sprintf("%s: %d\n", i18n.T("dashboard.open_cases"), m.stats.OpenCases)
		s += fmt.Sprintf("%s: %d\n", i18n.T("dashboard.recovered"), m.stats.RecoveredObjects)
		s += fmt.Sprintf("%s: %d\n\n", i18n.T("dashboard.alerts"), m.stats.ActiveAlerts)
	}
	if len(m.alerts) > 0 {
		s += specialStyle.Render(i18n.T("dashboard.area_alerts")) + "\n"
		for _, a := range m.alerts {
			s += itemStyle.Render(fmt.Sprintf("! %s: %s", a.Title, a.Message)) + "\n"
		}
		s += "\n"
	}
	if len(m.activity) > 0 {
		s += titleStyle.Render(i18n.T("dashboard.activity")) + "\n"
		for _, e := range m.activity {
			when := e.CreatedAt.Format("02/01 15:04")
			s += itemStyle.Render(fmt.Sprintf("%s  %s", when, e.Message)) + "\n"
		}
	}
	s += "\n" + helpStyle.Render(i18n.T("common.help.list"))
	return s
}
