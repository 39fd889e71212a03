// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/models"
)

const masked = "••••••••"

type detailScreen struct {
	item          client.Item
	reveal        bool
	confirmDelete bool
}

func (s detailScreen) view() string {
	var b strings.Builder

	for _, name := range models.VaultFieldNames {
		r, ok := s.item.Fields[name]
		value := "-"
		switch {
		case !ok:
		case r.Err != nil:
			value = warnStyle.Render(undecryptable)
		case name == models.FieldPassword && !s.reveal && r.Value != "":
			value = masked
		case r.Value != "":
			value = r.Value
		}
		b.WriteString(fmt.Sprintf("%-9s %s\n", string(name)+":", value))
	}

	if len(s.item.Tags) > 0 {
		b.WriteString(fmt.Sprintf("%-9s %s\n", "tags:", strings.Join(s.item.Tags, ", ")))
	}
	if !s.item.UpdatedAt.IsZero() {
		b.WriteString(helpStyle.Render("updated " + s.item.UpdatedAt.Local().Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}

	if s.confirmDelete {
		b.WriteString("\n" + errorStyle.Render("Delete this item? y/n") + "\n")
	}
	return b.String()
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail.confirmDelete {
		switch {
		case matches(msg, keys.yes):
			m.busy = true
			return m, m.cmdDelete(m.detail.item.ID)
		case matches(msg, keys.no):
			m.detail.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case matches(msg, keys.esc):
		m.detail = detailScreen{}
		m.screen = screenList
	case matches(msg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case matches(msg, keys.copy):
		return m.copyField(models.FieldPassword, "Password")
	case matches(msg, keys.copyUser):
		return m.copyField(models.FieldUsername, "Username")
	case matches(msg, keys.edit):
		m.form = newFormScreen(&m.detail.item)
		m.screen = screenForm
	case matches(msg, keys.delete):
		m.detail.confirmDelete = true
	}
	return m, nil
}

func (m appModel) copyField(name models.FieldName, what string) (tea.Model, tea.Cmd) {
	value, ok := m.detail.item.Value(name)
	if !ok || value == "" {
		m.status = "Nothing to copy"
		return m, nil
	}
	return m, m.cmdCopy(what, value)
}
