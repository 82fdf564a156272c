package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KeyBindingValue supports "s" or ["s", "enter"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "start", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.cairn/settings.json
type Settings struct {
	Animations  *bool             `json:"animations,omitempty"`
	Debug       *bool             `json:"debug,omitempty"`
	DefaultMode string            `json:"default_mode,omitempty"`
	Keys        KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles *int              `json:"max_log_files,omitempty"`
	Sound       *bool             `json:"sound,omitempty"`
}

// ApplyEnv overlays environment values on the settings file values.
// Unset variables leave the file values in place.
func (s *Settings) ApplyEnv(e *Env) {
	if e == nil {
		return
	}
	if e.Debug != nil {
		s.Debug = e.Debug
	}
	if e.DefaultMode != "" {
		s.DefaultMode = e.DefaultMode
	}
	if e.MaxLogFiles != nil {
		s.MaxLogFiles = e.MaxLogFiles
	}
}

// AnimationsEnabled reports whether the cairn and confetti animate (default true)
func (s *Settings) AnimationsEnabled() bool {
	return s.Animations == nil || *s.Animations
}

// SoundEnabled reports whether the completion chime plays (default true)
func (s *Settings) SoundEnabled() bool {
	return s.Sound == nil || *s.Sound
}

// LoadSettings loads settings from $CAIRN_HOME/settings.json (or ~/.cairn/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CAIRN_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
