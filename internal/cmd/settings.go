package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/renato0307/cairn/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

var settingsEnvVars = []string{
	config.HomeEnvVar,
	config.DebugEnvVar,
	config.DebugFileEnvVar,
	config.DefaultModeEnvVar,
	config.MaxLogFilesEnvVar,
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"environment":   settingsEnvVars,
			"format":        example,
			"settings_file": settingsFile,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	slices.Sort(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := example[name].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Environment variables (override settings.json, overridden by flags):")
	for _, name := range settingsEnvVars {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	fmt.Println("Create or edit this file to configure cairn.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
