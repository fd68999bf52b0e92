// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	lock      key.Binding
	copy      key.Binding
	copyOwner key.Binding
	refresh   key.Binding
	version   key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	lock:      key.NewBinding(key.WithKeys("l")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyOwner: key.NewBinding(key.WithKeys("p")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	version:   key.NewBinding(key.WithKeys("v")),
}
