package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/cairn/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip builds a tip from a format string and the keys to highlight.
// Format uses %s placeholders for keys, e.g. newTip("press %s to start", "s")
func newTip(format string, keys ...string) Tip {
	return Tip{Format: format, Keys: keys}
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var result string
	for i, part := range parts {
		result += theme.HintLabelStyle.Render(part)
		if i < len(tip.Keys) {
			result += theme.HintKeyStyle.Render(tip.Keys[i])
		}
	}
	return result
}

// KeyWithTip wraps a key.Binding with an optional tip shown under the timer
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}

// displayKey renders key names the way users type them
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// DisplayKeys renders a binding's keys for listings
func DisplayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = displayKey(k)
	}
	return out
}

// bindingKey accepts "space" in settings for the space bar
func bindingKey(k string) string {
	if k == "space" {
		return " "
	}
	return k
}
