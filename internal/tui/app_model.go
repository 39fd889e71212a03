// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
)

const (
	lockCheckInterval = time.Second
	statusLocked      = "Vault locked"
	statusIdleLocked  = "Vault locked after inactivity"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenForm
)

// appModel is the single bubbletea model. Each screen keeps its own state
// and the model routes messages to the active one.
type appModel struct {
	ctx       context.Context
	vault     client.Vault
	clipboard  clipboard.Clipboard
	clearAfter time.Duration

	// copied is the secret last put on the clipboard and not yet wiped. It
	// is shared by every copy of the model so that Run can wipe it on exit.
	copied *pendingCopy

	screen  screen
	busy    bool
	spinner spinner.Model
	status  string
	errMsg  string

	login  loginScreen
	list   listScreen
	detail detailScreen
	form   formScreen
}

type pendingCopy struct {
	value string
}

func newAppModel(ctx context.Context, vault client.Vault, clip clipboard.Clipboard, clearAfter time.Duration, email string) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:       ctx,
		vault:     vault,
		clipboard:  clip,
		clearAfter: clearAfter,
		copied:     &pendingCopy{},
		spinner:   s,
		login:     newLoginScreen(email),
		list:      newListScreen(),
	}
	if vault.Unlocked() {
		m.screen = screenList
		m.busy = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, lockCheck()}
	if m.screen == screenList {
		cmds = append(cmds, m.cmdLoadItems())
	}
	return tea.Batch(cmds...)
}

func lockCheck() tea.Cmd {
	return tea.Tick(lockCheckInterval, func(time.Time) tea.Msg { return lockCheckMsg{} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case lockCheckMsg:
		if m.screen != screenLogin && !m.vault.Unlocked() {
			var wipe tea.Cmd
			m, wipe = m.toLogin(statusIdleLocked)
			return m, tea.Batch(wipe, lockCheck())
		}
		return m, lockCheck()

	case unlockedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.login.clearPassword()
		m.screen = screenList
		m.errMsg = ""
		m.status = ""
		m.busy = true
		return m, m.cmdLoadItems()

	case itemsLoadedMsg:
		m.busy = false
		if errors.Is(msg.err, client.ErrLocked) {
			return m.toLogin(statusLocked)
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.list.setItems(msg.items)
		return m, nil

	case itemSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Saved"
		m.errMsg = ""
		m.screen = screenList
		m.busy = true
		return m, m.cmdLoadItems()

	case itemDeletedMsg:
		m.busy = false
		m.detail.confirmDelete = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Deleted"
		m.errMsg = ""
		m.screen = screenList
		m.busy = true
		return m, m.cmdLoadItems()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.copied.value = msg.value
		m.status = fmt.Sprintf("%s copied, clearing in %s", msg.what, m.clearAfter)
		return m, tea.Tick(m.clearAfter, func(time.Time) tea.Msg {
			return clipboardExpiredMsg{value: msg.value}
		})

	case clipboardExpiredMsg:
		// A newer copy restarted the countdown.
		if msg.value != m.copied.value {
			return m, nil
		}
		return m, m.cmdWipeClipboard()

	case clipboardWipedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard not cleared: " + msg.err.Error()
			return m, nil
		}
		// The lock message stays on the unlock screen.
		if msg.cleared && m.screen != screenLogin {
			m.status = "Clipboard cleared"
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		m.status = ""
		m.errMsg = ""

		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenList:
			return m.updateList(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenForm:
			return m.updateForm(msg)
		}
	}

	return m.updateInputs(msg)
}

// updateInputs forwards non-key messages, such as cursor blinks, to the
// focused text input.
func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.login, cmd = m.login.update(msg)
	case screenList:
		m.list, cmd = m.list.updateFilter(msg)
	case screenForm:
		m.form, cmd = m.form.update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.login.view()
	case screenList:
		body = m.list.view()
	case screenDetail:
		body = m.detail.view()
	case screenForm:
		body = m.form.view()
	}

	if m.busy {
		body += "\n" + m.spinner.View() + " working..."
	}
	if m.status != "" {
		body += "\n" + m.status
	}
	if m.errMsg != "" {
		body += "\n" + errorStyle.Render(m.errMsg)
	}

	return renderPage(m.title(), body, m.hotKeys())
}

func (m appModel) title() string {
	switch m.screen {
	case screenList:
		return "Vault"
	case screenDetail:
		return "Item"
	case screenForm:
		if m.form.editingID != "" {
			return "Edit item"
		}
		return "New item"
	default:
		return "Unlock vault"
	}
}

func (m appModel) hotKeys() string {
	switch m.screen {
	case screenList:
		return "enter open  n new  / tag filter  r reload  L lock  q quit"
	case screenDetail:
		if m.detail.confirmDelete {
			return "y delete  n cancel"
		}
		return "space reveal  c copy password  u copy username  e edit  d delete  esc back"
	case screenForm:
		return "tab next field  ctrl+g generate password  ctrl+s save  esc cancel"
	default:
		return "tab next field  enter unlock  esc quit"
	}
}

// toLogin forgets every decrypted value, including a copied secret, and
// shows the unlock screen.
func (m appModel) toLogin(status string) (appModel, tea.Cmd) {
	m.screen = screenLogin
	m.busy = false
	m.list = newListScreen()
	m.detail = detailScreen{}
	m.form = formScreen{}
	m.login.clearPassword()
	m.status = status
	return m, m.cmdWipeClipboard()
}

// ── commands ──────────────────────────────────────────────────────────────────

func (m appModel) cmdUnlock(email, password string) tea.Cmd {
	return func() tea.Msg {
		return unlockedMsg{err: m.vault.Unlock(m.ctx, email, password)}
	}
}

func (m appModel) cmdLoadItems() tea.Cmd {
	tag := m.list.tag
	return func() tea.Msg {
		items, err := m.vault.ListItems(m.ctx, tag)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdAdd(in client.ItemInput) tea.Cmd {
	return func() tea.Msg {
		_, err := m.vault.AddItem(m.ctx, in)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdate(id string, patch client.ItemPatch) tea.Cmd {
	return func() tea.Msg {
		return itemSavedMsg{err: m.vault.UpdateItem(m.ctx, id, patch)}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: m.vault.DeleteItem(m.ctx, id)}
	}
}

func (m appModel) cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		if m.clipboard == nil {
			return copiedMsg{what: what, err: clipboard.ErrUnavailable}
		}
		return copiedMsg{what: what, value: value, err: m.clipboard.Write(value)}
	}
}

// cmdWipeClipboard clears the pending secret if the clipboard still holds
// it. It is nil when nothing is pending.
func (m appModel) cmdWipeClipboard() tea.Cmd {
	value := m.copied.value
	if value == "" {
		return nil
	}
	m.copied.value = ""

	return func() tea.Msg {
		cleared, err := clipboard.ClearIfUnchanged(m.clipboard, value)
		return clipboardWipedMsg{cleared: cleared, err: err}
	}
}

func matches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}
