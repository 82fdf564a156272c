package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionDispatcher maps key presses to UI messages through the key definitions.
// This keeps the model decoupled from the concrete keys a user configured.
type ActionDispatcher struct {
	keys *KeyMap
}

// NewActionDispatcher creates a new action dispatcher for a key map
func NewActionDispatcher(keys *KeyMap) *ActionDispatcher {
	return &ActionDispatcher{keys: keys}
}

// Dispatch returns the message bound to the pressed key.
// Returns nil if no binding matches.
func (d *ActionDispatcher) Dispatch(msg tea.KeyMsg) tea.Msg {
	for _, def := range AllKeyDefinitions {
		binding, ok := d.keys.Binding(def.Name)
		if !ok || !key.Matches(msg, binding) {
			continue
		}

		if def.Name == "quick_mode" {
			return quickModeMsg(msg, binding)
		}
		if def.Msg == nil {
			return nil
		}
		return def.Msg
	}
	return nil
}

// quickModeMsg selects the mode whose position matches the pressed key's
// position in the binding
func quickModeMsg(msg tea.KeyMsg, binding key.Binding) tea.Msg {
	pressed := msg.String()
	for i, k := range binding.Keys() {
		if k == pressed {
			return SelectModeMsg{Index: i}
		}
	}
	return nil
}
