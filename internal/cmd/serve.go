package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used to accept clients (default ~/.ssh/authorized_keys)"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Mode           string `help:"Session length selected for each client (see 'cairn modes')"`
	NoAnimations   bool   `help:"Draw new stones at rest and keep confetti still"`
	NoSound        bool   `help:"Do not ring the client's bell on completion"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	mode, err := cli.resolveMode(s.Mode)
	if err != nil {
		return err
	}

	keysConfig, err := cli.keysConfig()
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting cairn SSH server",
		"host", s.Host,
		"port", s.Port,
		"mode", mode)

	srv, err := server.NewServer(s.Host, s.Port, server.Options{
		Animations:         !s.NoAnimations && cli.settings.AnimationsEnabled(),
		AuthorizedKeysPath: s.AuthorizedKeys,
		DefaultMode:        mode,
		Keys:               keysConfig,
		SessionConfig:      cli.Container.SessionConfig,
		Sound:              !s.NoSound && cli.settings.SoundEnabled(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Blocks until a signal arrives or the listener fails
	return srv.Start(ctx)
}
