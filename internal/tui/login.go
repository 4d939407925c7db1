// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/validate"
)

// loginNavigateDelay keeps the success banner on screen briefly before the
// portal opens. Purely cosmetic; the session is already persisted by then.
const loginNavigateDelay = 1200 * time.Millisecond

const (
	loginFieldIdentifier = iota
	loginFieldPassword
	loginFieldCount
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	err error
}

// loginModel is the credential form for both portals. Tab switches between
// the citizen and police variants, which only differ in the identifier
// field and the endpoint hit on submit.
type loginModel struct {
	deps     Deps
	userType model.UserType

	inputs  []textinput.Model
	focused int

	submitting bool
	succeeded  bool
	errMsg     string
}

func newLoginModel(deps Deps) loginModel {
	m := loginModel{
		deps:     deps,
		userType: model.UserCitizen,
		inputs:   make([]textinput.Model, loginFieldCount),
	}

	id := textinput.New()
	id.CharLimit = 64
	id.Width = 32
	id.Focus()
	m.inputs[loginFieldIdentifier] = id

	pw := textinput.New()
	pw.CharLimit = 64
	pw.Width = 32
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	m.inputs[loginFieldPassword] = pw

	m.applyPlaceholders()
	return m
}

func (m *loginModel) applyPlaceholders() {
	if m.userType == model.UserOfficer {
		m.inputs[loginFieldIdentifier].Placeholder = i18n.T("login.matricula")
	} else {
		m.inputs[loginFieldIdentifier].Placeholder = i18n.T("login.cpf")
	}
	m.inputs[loginFieldPassword].Placeholder = i18n.T("login.password")
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// submitCmd validates locally first; only clean input reaches the network.
func (m loginModel) submitCmd() tea.Cmd {
	identifier := m.inputs[loginFieldIdentifier].Value()
	password := m.inputs[loginFieldPassword].Value()
	userType := m.userType
	apiClient := m.deps.API
	sessions := m.deps.Sessions

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			sess model.Session
			err  error
		)
		if userType == model.UserOfficer {
			sess, err = apiClient.LoginOfficer(ctx, identifier, password)
		} else {
			sess, err = apiClient.LoginCitizen(ctx, identifier, password)
		}
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := sessions.Login(sess); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.succeeded = true
		return m, tea.Tick(loginNavigateDelay, func(time.Time) tea.Msg {
			return loginNavigateMsg{}
		})

	case tea.KeyMsg:
		if m.submitting || m.succeeded {
			// A request is in flight or we are about to navigate; further
			// keystrokes must not fire a second submission.
			return m, nil
		}
		switch msg.String() {
		case "tab":
			if m.userType == model.UserCitizen {
				m.userType = model.UserOfficer
			} else {
				m.userType = model.UserCitizen
			}
			m.applyPlaceholders()
			m.errMsg = ""
			return m, nil
		case "up", "shift+tab":
			m.setFocus((m.focused + loginFieldCount - 1) % loginFieldCount)
			return m, nil
		case "down":
			m.setFocus((m.focused + 1) % loginFieldCount)
			return m, nil
		case "enter":
			if m.focused < loginFieldPassword {
				m.setFocus(m.focused + 1)
				return m, nil
			}
			identifier := m.inputs[loginFieldIdentifier].Value()
			password := m.inputs[loginFieldPassword].Value()
			var msgID string
			if m.userType == model.UserOfficer {
				msgID = validate.OfficerLogin(identifier, password)
			} else {
				msgID = validate.CitizenLogin(identifier, password)
			}
			if msgID != "" {
				m.errMsg = i18n.T(msgID)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *loginModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m loginModel) View() string {
	s := mainTitleStyle.Render("Achei") + "\n\n"
	if m.userType == model.UserOfficer {
		s += titleStyle.Render(i18n.T("login.title.police")) + "\n\n"
	} else {
		s += titleStyle.Render(i18n.T("login.title.citizen")) + "\n\n"
	}

	for i := range m.inputs {
		s += m.inputs[i].View() + "\n"
	}

	switch {
	case m.succeeded:
		s += "\n" + successStyle.Render(i18n.T("login.success")) + "\n"
	case m.submitting:
		s += "\n" + specialStyle.Render(i18n.T("login.submitting")) + "\n"
	case m.errMsg != "":
		s += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	s += "\n" + helpStyle.Render(i18n.T("login.help"))
	return s
}
