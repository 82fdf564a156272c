package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/cairn/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
}

// TimerKeys defines key bindings driving the countdown
type TimerKeys struct {
	Pause KeyWithTip
	Reset KeyWithTip
	Start KeyWithTip
}

// ModeKeys defines key bindings for switching the session length
type ModeKeys struct {
	Choose KeyWithTip
	Quick  KeyWithTip
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
	}
}

func newTimerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TimerKeys {
	return TimerKeys{
		Pause: buildBinding("pause", defaults, customKeys),
		Reset: buildBinding("reset", defaults, customKeys),
		Start: buildBinding("start", defaults, customKeys),
	}
}

func newModeKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ModeKeys {
	return ModeKeys{
		Choose: buildBinding("choose_mode", defaults, customKeys),
		Quick:  buildBinding("quick_mode", defaults, customKeys),
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = make([]string, len(custom))
		for i, k := range custom {
			keys[i] = bindingKey(k)
		}
	}

	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = displayKey(k)
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(shown, "/"), def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		tip := newTip(def.TipFormat, shown[0])
		result.Tip = &tip
	}

	return result
}
