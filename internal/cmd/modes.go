package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/cairn/internal/domain"
)

// ModesCmd lists the session lengths
type ModesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type modeEntry struct {
	Default bool   `json:"default"`
	Key     string `json:"key"`
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
}

// Run executes the modes command
func (m *ModesCmd) Run(cli *CLI) error {
	sessionConfig := cli.Container.SessionConfig
	defaultName := sessionConfig.Default().Name
	if cli.settings != nil && cli.settings.DefaultMode != "" {
		if _, err := sessionConfig.Lookup(cli.settings.DefaultMode); err == nil {
			defaultName = cli.settings.DefaultMode
		}
	}

	entries := buildModeEntries(sessionConfig, defaultName)

	if m.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Key\tName\tLength\tDefault")
	fmt.Fprintln(w, "───\t────\t──────\t───────")
	for _, e := range entries {
		marker := ""
		if e.Default {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Key, e.Name, domain.FormatClock(e.Seconds), marker)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Press a mode's key in the timer, or use 'cairn --mode <name>'.")
	return nil
}

// buildModeEntries lists modes in quick-select order. Quick keys only
// reach the first nine modes.
func buildModeEntries(sessionConfig domain.SessionConfig, defaultName string) []modeEntry {
	modes := sessionConfig.Modes()
	entries := make([]modeEntry, len(modes))
	for i, mode := range modes {
		key := "-"
		if i < 9 {
			key = fmt.Sprintf("%d", i+1)
		}
		entries[i] = modeEntry{
			Default: mode.Name == defaultName,
			Key:     key,
			Name:    mode.Name,
			Seconds: mode.Seconds,
		}
	}
	return entries
}
