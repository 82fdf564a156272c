package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/cairn/internal/config"
	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/random"
	"github.com/renato0307/cairn/internal/ui"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the cairn timer (default)" default:"1"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the timer over SSH"`
	Simulate  SimulateCmd  `cmd:"simulate" help:"Run sessions headless on a virtual clock"`
	Modes     ModesCmd     `cmd:"modes" help:"List the available session lengths"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play the completion chime" hidden:""`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	c.settings.ApplyEnv(env)

	if c.MaxLogFiles == defaultMaxLogFiles && c.settings.MaxLogFiles != nil {
		c.MaxLogFiles = *c.settings.MaxLogFiles
	}
	if !c.Debug && c.settings.Debug != nil && *c.settings.Debug {
		c.Debug = true
	}
	if c.DebugFile == "" {
		c.DebugFile = env.DebugFile
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Debug("Logging initialized",
			"path", logFilePath,
			"max_log_files", c.MaxLogFiles)
	}

	// Create container AFTER logging is initialized
	container, err := NewContainer(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keysConfig returns the validated key binding overrides
func (c *CLI) keysConfig() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	if err := checkEffectiveBindings(ui.GetDefaultKeyBindings(), c.settings.Keys); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// resolveMode picks the flag value, then the configured default mode,
// and checks it exists
func (c *CLI) resolveMode(flagValue string) (string, error) {
	mode := flagValue
	if mode == "" && c.settings != nil {
		mode = c.settings.DefaultMode
	}
	if mode == "" {
		return "", nil
	}
	if _, err := c.Container.SessionConfig.Lookup(mode); err != nil {
		return "", fmt.Errorf("invalid mode: %w", err)
	}
	return mode, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev          bool   `help:"Enable development mode (shows version info in dialogs)"`
	Mode         string `help:"Session length selected at startup (see 'cairn modes')"`
	NoAnimations bool   `help:"Draw new stones at rest and keep confetti still"`
	NoSound      bool   `help:"Do not play the completion chime"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting cairn TUI")

	mode, err := cli.resolveMode(r.Mode)
	if err != nil {
		return err
	}

	keysConfig, err := cli.keysConfig()
	if err != nil {
		return err
	}

	animations := !r.NoAnimations && cli.settings.AnimationsEnabled()

	// The bell goes through the rendered frame; the player must not write
	// to the terminal the program owns
	var sound ui.Sound
	if !r.NoSound && cli.settings.SoundEnabled() {
		sound = ui.Sound{Bell: true, Player: cli.Container.NativeSoundPlayer}
	}

	rng, err := random.NewSeededRand()
	if err != nil {
		return err
	}

	logging.Logger.Debug("Initializing Bubble Tea program",
		"mode", mode,
		"animations", animations,
		"sound", sound.Bell)

	p := tea.NewProgram(
		ui.NewModel(
			cli.Container.SessionConfig,
			mode,
			animations,
			r.Dev,
			keysConfig,
			sound,
			rng,
		),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
