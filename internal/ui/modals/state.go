// Package modals provides modal dialog state types for the UI.
// Each modal type implements the ModalState interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithSize is an optional interface for modals that adapt to the
// space the screen offers.
type ModalWithSize interface {
	ModalState
	SetSize(width, height int)
}

// HelpShortcut represents a single keyboard shortcut for display
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpShortcutTriggeredMsg is sent when user selects a shortcut in the help modal
type HelpShortcutTriggeredMsg struct {
	Key string // The key string to simulate (e.g., "n", "s", "q")
}

// HelpSection represents a group of related shortcuts
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// Mask is a preset persona a new chat can start with
type Mask struct {
	ID   string
	Name string
}

// DefaultMasks are offered by the mask picker. The empty id starts a plain chat.
var DefaultMasks = []Mask{
	{ID: "", Name: "No mask"},
	{ID: "translator", Name: "Translator"},
	{ID: "writer", Name: "Writer"},
	{ID: "coder", Name: "Coder"},
	{ID: "tutor", Name: "Tutor"},
}
