package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/cairn/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Mode        ModeKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Mode:        newModeKeys(defaults, keysConfig),
		Timer:       newTimerKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.Start.Binding,
		k.Timer.Pause.Binding,
		k.Timer.Reset.Binding,
		k.Mode.Choose.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns the tips of every binding that has one, in a stable order
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, kt := range []KeyWithTip{
		k.Timer.Start,
		k.Mode.Choose,
		k.Mode.Quick,
		k.Timer.Pause,
		k.Timer.Reset,
		k.Application.Help,
	} {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}

// Binding returns the binding registered under a key definition name
func (k KeyMap) Binding(name string) (key.Binding, bool) {
	switch name {
	case "choose_mode":
		return k.Mode.Choose.Binding, true
	case "force_quit":
		return k.Application.ForceQuit.Binding, true
	case "help":
		return k.Application.Help.Binding, true
	case "pause":
		return k.Timer.Pause.Binding, true
	case "quick_mode":
		return k.Mode.Quick.Binding, true
	case "quit":
		return k.Application.Quit.Binding, true
	case "reset":
		return k.Timer.Reset.Binding, true
	case "start":
		return k.Timer.Start.Binding, true
	}
	return key.Binding{}, false
}
