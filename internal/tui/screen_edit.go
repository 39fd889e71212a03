// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

// formTags is the index of the tags input after the encrypted fields.
var formTags = len(models.VaultFieldNames)

// formScreen adds a new item or edits an existing one. One input per
// encrypted field, in display order, then a comma-separated tag list.
type formScreen struct {
	inputs []textinput.Model
	focus  int

	// editingID is empty for a new item.
	editingID string
	original  []string
}

func newFormScreen(item *client.Item) formScreen {
	inputs := make([]textinput.Model, formTags+1)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 4096
	}
	for i, name := range models.VaultFieldNames {
		inputs[i].Placeholder = string(name)
	}
	passwordIdx := slices.Index(models.VaultFieldNames, models.FieldPassword)
	inputs[passwordIdx].EchoMode = textinput.EchoPassword
	inputs[passwordIdx].EchoCharacter = '*'
	inputs[formTags].Placeholder = "tags, comma separated"

	f := formScreen{inputs: inputs}
	if item != nil {
		f.editingID = item.ID
		for i, name := range models.VaultFieldNames {
			if r, ok := item.Fields[name]; ok && r.Err != nil {
				f.inputs[i].Placeholder = "cannot decrypt, type to replace"
				continue
			}
			value, _ := item.Value(name)
			f.inputs[i].SetValue(value)
		}
		f.inputs[formTags].SetValue(strings.Join(item.Tags, ", "))
	}

	f.original = f.values()
	f.inputs[0].Focus()
	return f
}

func (f formScreen) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

func (f *formScreen) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f formScreen) update(msg tea.Msg) (formScreen, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func parseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" && !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// input builds a new item. Empty fields are left out.
func (f formScreen) input() client.ItemInput {
	values := f.values()
	in := client.ItemInput{Tags: parseTags(values[formTags])}

	set := map[models.FieldName]**string{
		models.FieldTitle:    &in.Title,
		models.FieldUsername: &in.Username,
		models.FieldPassword: &in.Password,
		models.FieldURL:      &in.URL,
		models.FieldNotes:    &in.Notes,
	}
	for i, name := range models.VaultFieldNames {
		if v := values[i]; v != "" {
			*set[name] = &v
		}
	}
	return in
}

// patch carries only what changed since the form was opened.
func (f formScreen) patch() client.ItemPatch {
	values := f.values()
	var p client.ItemPatch

	set := map[models.FieldName]**string{
		models.FieldTitle:    &p.Title,
		models.FieldUsername: &p.Username,
		models.FieldPassword: &p.Password,
		models.FieldURL:      &p.URL,
		models.FieldNotes:    &p.Notes,
	}
	for i, name := range models.VaultFieldNames {
		if v := values[i]; v != f.original[i] {
			*set[name] = &v
		}
	}
	if values[formTags] != f.original[formTags] {
		tags := parseTags(values[formTags])
		p.Tags = &tags
	}
	return p
}

func (f formScreen) view() string {
	var b strings.Builder
	for i, name := range models.VaultFieldNames {
		b.WriteString(padLabel(string(name)) + f.inputs[i].View() + "\n")
	}
	b.WriteString(padLabel("tags") + f.inputs[formTags].View() + "\n")
	return b.String()
}

func padLabel(s string) string {
	return s + ":" + strings.Repeat(" ", max(1, 10-len(s)))
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, keys.esc):
		if m.form.editingID != "" {
			m.screen = screenDetail
		} else {
			m.screen = screenList
		}
		m.form = formScreen{}
		return m, nil
	case matches(msg, keys.next):
		m.form.move(1)
		return m, nil
	case matches(msg, keys.prev):
		m.form.move(-1)
		return m, nil
	case matches(msg, keys.generate):
		secret, err := m.vault.Generate(generator.DefaultPolicy())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.form.inputs[slices.Index(models.VaultFieldNames, models.FieldPassword)].SetValue(secret)
		m.status = "Password generated"
		return m, nil
	case matches(msg, keys.save), matches(msg, keys.enter) && m.form.focus == formTags:
		return m.saveForm()
	case matches(msg, keys.enter):
		m.form.move(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) saveForm() (tea.Model, tea.Cmd) {
	if m.form.editingID == "" {
		m.busy = true
		return m, m.cmdAdd(m.form.input())
	}

	patch := m.form.patch()
	if patch == (client.ItemPatch{}) {
		m.status = "Nothing changed"
		m.screen = screenDetail
		return m, nil
	}
	m.busy = true
	return m, m.cmdUpdate(m.form.editingID, patch)
}
