// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	next     key.Binding
	prev     key.Binding
	quit     key.Binding
	lock     key.Binding
	newItem  key.Binding
	reload   key.Binding
	filter   key.Binding
	edit     key.Binding
	delete   key.Binding
	reveal   key.Binding
	copy     key.Binding
	copyUser key.Binding
	generate key.Binding
	save     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	next:     key.NewBinding(key.WithKeys("tab", "down")),
	prev:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	lock:     key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	reload:   key.NewBinding(key.WithKeys("r")),
	filter:   key.NewBinding(key.WithKeys("/")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	reveal:   key.NewBinding(key.WithKeys(" ")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
