package domain

import (
	"fmt"
	"strings"
)

// DefaultModeName is the mode selected when the timer is created
const DefaultModeName = "1min"

// Mode is a named session length
type Mode struct {
	Name    string
	Seconds int
}

// Label returns the human readable length (e.g. "25 min", "45 sec")
func (m Mode) Label() string {
	if m.Seconds%60 == 0 {
		return fmt.Sprintf("%d min", m.Seconds/60)
	}
	return fmt.Sprintf("%d sec", m.Seconds)
}

// SessionConfig is the fixed, ordered set of modes a timer can run.
// It is immutable once created.
type SessionConfig struct {
	modes []Mode
}

// DefaultSessionConfig holds the modes offered by the widget
var DefaultSessionConfig = NewSessionConfig(
	Mode{Name: "1min", Seconds: 60},
	Mode{Name: "25min", Seconds: 1500},
)

// NewSessionConfig creates a SessionConfig from the given modes, in order.
// Modes with a non-positive duration or a duplicated name are skipped.
func NewSessionConfig(modes ...Mode) SessionConfig {
	seen := make(map[string]bool, len(modes))
	kept := make([]Mode, 0, len(modes))
	for _, m := range modes {
		if m.Seconds <= 0 || m.Name == "" || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		kept = append(kept, m)
	}
	return SessionConfig{modes: kept}
}

// Modes returns a copy of the configured modes in display order
func (c SessionConfig) Modes() []Mode {
	out := make([]Mode, len(c.modes))
	copy(out, c.modes)
	return out
}

// Lookup resolves a mode by name
func (c SessionConfig) Lookup(name string) (Mode, error) {
	for _, m := range c.modes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMode, name, strings.Join(c.Names(), ", "))
}

// At returns the mode at a zero-based position
func (c SessionConfig) At(index int) (Mode, bool) {
	if index < 0 || index >= len(c.modes) {
		return Mode{}, false
	}
	return c.modes[index], true
}

// Names returns the mode names in display order
func (c SessionConfig) Names() []string {
	names := make([]string, len(c.modes))
	for i, m := range c.modes {
		names[i] = m.Name
	}
	return names
}

// Default returns the mode named DefaultModeName, or the first mode if the
// config does not contain it
func (c SessionConfig) Default() Mode {
	if m, err := c.Lookup(DefaultModeName); err == nil {
		return m
	}
	if len(c.modes) > 0 {
		return c.modes[0]
	}
	return Mode{Name: DefaultModeName, Seconds: 60}
}
