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
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
)

type notificationsLoadedMsg struct {
	notifications []model.Notification
	err           error
}

type notificationReadMsg struct {
	id  int64
	err error
}

// notificationsModel lists per-user notifications. Read state is mirrored
// into the local cache so it survives server-side resets.
type notificationsModel struct {
	deps Deps

	loading       bool
	notifications []model.Notification
	cursor        int
	errMsg        string
}

func newNotificationsModel(deps Deps) notificationsModel {
	return notificationsModel{deps: deps, loading: true}
}

func (m notificationsModel) Init() tea.Cmd {
	apiClient := m.deps.API
	cache := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifs, err := apiClient.Notifications(ctx)
		if err != nil {
			return notificationsLoadedMsg{err: err}
		}
		if cache != nil {
			readIDs, cerr := cache.ReadNotificationIDs(ctx)
			if cerr != nil {
				logging.Warnf("notification read state unavailable: %v", cerr)
			} else {
				for i := range notifs {
					if readIDs[notifs[i].ID] {
						notifs[i].Read = true
					}
				}
			}
		}
		return notificationsLoadedMsg{notifications: notifs}
	}
}

func (m notificationsModel) markReadCmd(id int64) tea.Cmd {
	apiClient := m.deps.API
	cache := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if cache != nil {
			if cerr := cache.MarkNotificationRead(ctx, id); cerr != nil {
				logging.Warnf("notification %d not marked locally: %v", id, cerr)
			}
		}
		return notificationReadMsg{id: id, err: apiClient.MarkNotificationRead(ctx, id)}
	}
}

func (m notificationsModel) Update(msg tea.Msg) (notificationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notifications = msg.notifications
		if m.cursor >= len(m.notifications) {
			m.cursor = 0
		}
		return m, nil

	case notificationReadMsg:
		// Local state already flipped; a remote failure is not fatal.
		if msg.err != nil {
			logging.Debugf("notification %d not marked remotely: %v", msg.id, msg.err)
		}
		for i := range m.notifications {
			if m.notifications[i].ID == msg.id {
				m.notifications[i].Read = true
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.notifications)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.notifications) > 0 && !m.notifications[m.cursor].Read {
				return m, m.markReadCmd(m.notifications[m.cursor].ID)
			}
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.Init()
		}
	}
	return m, nil
}

func (m notificationsModel) View() string {
	s := titleStyle.Render(i18n.T("notifications.title")) + "\n\n"
	if m.loading {
		return s + i18n.T("common.loading")
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n\n"
	}
	if len(m.notifications) == 0 {
		s += i18n.T("notifications.empty") + "\n"
	}
	for i, n := range m.notifications {
		marker := "●"
		if n.Read {
			marker = " "
		}
		line := fmt.Sprintf("%s %s: %s", marker, n.Title, n.Message)
		if i == m.cursor {
			s += selectedItemStyle.Render("> "+line) + "\n"
		} else if n.Read {
			s += disabledStyle.Render("  "+line) + "\n"
		} else {
			s += itemStyle.Render("  "+line) + "\n"
		}
	}
	s += "\n" + helpStyle.Render(i18n.T("notifications.help"))
	return s
}
