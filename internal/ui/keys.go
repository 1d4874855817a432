// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings shared by the prompt models.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the prompts.
type KeyMap struct {
	// Navigation keys
	Up     key.Binding // Move the select cursor up
	Down   key.Binding // Move the select cursor down
	Toggle key.Binding // Flip a confirm answer

	// Answering
	Enter  key.Binding // Submit the current answer
	Yes    key.Binding // Answer yes in confirms
	No     key.Binding // Answer no in confirms
	Cancel key.Binding // Abort the whole session
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("left", "right", "h", "l", "tab"),
		key.WithHelp("←/→", "toggle"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc/ctrl+c", "cancel"),
	),
}
