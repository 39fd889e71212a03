// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

type loginScreen struct {
	inputs []textinput.Model
	focus  int
}

func newLoginScreen(email string) loginScreen {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[loginEmail].Placeholder = "you@example.com"
	inputs[loginEmail].SetValue(email)
	inputs[loginPassword].Placeholder = "master password"
	inputs[loginPassword].EchoMode = textinput.EchoPassword
	inputs[loginPassword].EchoCharacter = '*'

	s := loginScreen{inputs: inputs}
	if email != "" {
		s.focus = loginPassword
	}
	s.inputs[s.focus].Focus()
	return s
}

func (s *loginScreen) clearPassword() {
	if len(s.inputs) > loginPassword {
		s.inputs[loginPassword].SetValue("")
	}
}

func (s *loginScreen) move(delta int) {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s loginScreen) update(msg tea.Msg) (loginScreen, tea.Cmd) {
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s loginScreen) view() string {
	var b strings.Builder
	b.WriteString("Email:           " + s.inputs[loginEmail].View() + "\n")
	b.WriteString("Master password: " + s.inputs[loginPassword].View() + "\n")
	return b.String()
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, keys.esc):
		return m, tea.Quit
	case matches(msg, keys.next):
		m.login.move(1)
		return m, nil
	case matches(msg, keys.prev):
		m.login.move(-1)
		return m, nil
	case matches(msg, keys.enter):
		if m.login.focus == loginEmail {
			m.login.move(1)
			return m, nil
		}

		email := strings.TrimSpace(m.login.inputs[loginEmail].Value())
		password := m.login.inputs[loginPassword].Value()
		if email == "" || password == "" {
			m.errMsg = "Email and master password are required"
			return m, nil
		}

		m.busy = true
		m.status = "Deriving key..."
		return m, m.cmdUnlock(email, password)
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}
