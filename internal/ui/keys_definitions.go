package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Msg       tea.Msg // Prototype message for dispatch (nil if handled inline)
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text, and tips.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Msg: QuitMsg{}},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", Msg: QuitMsg{}},

	// Timer keys
	{Name: "pause", Defaults: []string{"p", " "}, Help: "pause or resume", Msg: TogglePauseMsg{}, TipFormat: "press %s to take a breather without losing time"},
	{Name: "reset", Defaults: []string{"r"}, Help: "reset the countdown", Msg: ResetTimerMsg{}, TipFormat: "press %s to start the round over"},
	{Name: "start", Defaults: []string{"s", "enter"}, Help: "start the countdown", Msg: StartTimerMsg{}, TipFormat: "press %s to start a session"},

	// Mode keys
	{Name: "choose_mode", Defaults: []string{"m"}, Help: "choose session length", Msg: ChooseModeMsg{}, TipFormat: "press %s to pick a session length"},
	{Name: "quick_mode", Defaults: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Help: "select mode by number", TipFormat: "press %s to switch to the first mode"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
