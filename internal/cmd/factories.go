package cmd

import (
	adaptersound "github.com/renato0307/cairn/internal/adapters/sound"
	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/ports"
	"github.com/renato0307/cairn/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	NotificationService *services.NotificationService
	SimulationService   *services.SimulationService

	// NativeSoundPlayer never writes to the terminal, for use under the TUI
	NativeSoundPlayer ports.SoundPlayer
	SessionConfig     domain.SessionConfig
}

// NewContainer creates a new Container with all dependencies wired.
// A nil soundPlayer uses the local machine's players; a given one serves
// both roles.
func NewContainer(soundPlayer ports.SoundPlayer) (*Container, error) {
	nativePlayer := soundPlayer
	if soundPlayer == nil {
		soundPlayer = adaptersound.NewPlayer()
		nativePlayer = adaptersound.NewNativePlayer()
	}
	sessionConfig := domain.DefaultSessionConfig

	return &Container{
		NativeSoundPlayer:   nativePlayer,
		NotificationService: services.NewNotificationService(soundPlayer),
		SessionConfig:       sessionConfig,
		// Simulations are silent
		SimulationService: services.NewSimulationService(sessionConfig, nil),
	}, nil
}

// Close releases resources held by the container
func (c *Container) Close() error {
	return nil
}
