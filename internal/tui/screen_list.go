// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	untitled      = "(untitled)"
	undecryptable = "<cannot decrypt>"
	maxTitleWidth = 40
)

type listScreen struct {
	items  []client.Item
	cursor int

	// tag is the active server-side filter.
	tag       string
	filter    textinput.Model
	filtering bool
}

func newListScreen() listScreen {
	f := textinput.New()
	f.Placeholder = "tag"
	f.Width = 30
	return listScreen{filter: f}
}

func (s *listScreen) setItems(items []client.Item) {
	s.items = items
	s.cursor = min(s.cursor, len(items)-1)
	s.cursor = max(s.cursor, 0)
}

func (s listScreen) current() (client.Item, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return client.Item{}, false
	}
	return s.items[s.cursor], true
}

func (s listScreen) updateFilter(msg tea.Msg) (listScreen, tea.Cmd) {
	if !s.filtering {
		return s, nil
	}
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	return s, cmd
}

func itemTitle(item client.Item) string {
	r, ok := item.Fields[models.FieldTitle]
	switch {
	case !ok || (r.Err == nil && r.Value == ""):
		return untitled
	case r.Err != nil:
		return warnStyle.Render(undecryptable)
	default:
		return fitText(r.Value, maxTitleWidth)
	}
}

func (s listScreen) view() string {
	var b strings.Builder

	if s.filtering {
		b.WriteString("Filter by tag: " + s.filter.View() + "\n\n")
	} else if s.tag != "" {
		b.WriteString(fmt.Sprintf("Tag: %s\n\n", s.tag))
	}

	if len(s.items) == 0 {
		b.WriteString("No items\n")
		return b.String()
	}

	for i, item := range s.items {
		cursor := "  "
		title := itemTitle(item)
		if i == s.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := cursor + title
		if len(item.Tags) > 0 {
			line += helpStyle.Render("  [" + strings.Join(item.Tags, ", ") + "]")
		}
		if len(item.Failed()) > 0 {
			line += warnStyle.Render("  !")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.filtering {
		switch {
		case matches(msg, keys.enter):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.tag = strings.TrimSpace(m.list.filter.Value())
			m.list.cursor = 0
			m.busy = true
			return m, m.cmdLoadItems()
		case matches(msg, keys.esc):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.filter.SetValue(m.list.tag)
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.updateFilter(msg)
		return m, cmd
	}

	switch {
	case matches(msg, keys.quit), matches(msg, keys.esc):
		return m, tea.Quit
	case matches(msg, keys.up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
	case matches(msg, keys.down):
		if m.list.cursor < len(m.list.items)-1 {
			m.list.cursor++
		}
	case matches(msg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailScreen{item: item}
		m.screen = screenDetail
	case matches(msg, keys.newItem):
		m.form = newFormScreen(nil)
		m.screen = screenForm
	case matches(msg, keys.filter):
		m.list.filtering = true
		m.list.filter.SetValue(m.list.tag)
		m.list.filter.Focus()
		return m, textinput.Blink
	case matches(msg, keys.reload):
		m.busy = true
		return m, m.cmdLoadItems()
	case matches(msg, keys.lock):
		m.vault.Lock()
		return m.toLogin(statusLocked)
	}

	return m, nil
}
