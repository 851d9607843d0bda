// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	load      key.Binding
	create    key.Binding
	search    key.Binding
	update    key.Binding
	delete    key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	load:      key.NewBinding(key.WithKeys("ctrl+l")),
	create:    key.NewBinding(key.WithKeys("ctrl+n")),
	search:    key.NewBinding(key.WithKeys("ctrl+f")),
	update:    key.NewBinding(key.WithKeys("ctrl+u")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
}
