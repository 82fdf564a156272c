package sound

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/cairn/internal/domain"
)

// Sound events
const (
	EventComplete = domain.SoundComplete
	EventPause    = domain.SoundPause
	EventStart    = domain.SoundStart
)

// ErrNoNativeSound is returned by a native-only player when no platform
// sound tool could be started
var ErrNoNativeSound = errors.New("no native sound player available")

// Player implements ports.SoundPlayer.
// It tries the platform's native sound tools first and rings the terminal
// bell on out when none of them succeed. Without out it only plays native
// sounds.
type Player struct {
	native bool
	out    io.Writer
}

// NewPlayer creates a sound player for the local machine that falls back to
// the bell on stdout. Not for use while a TUI owns stdout.
func NewPlayer() *Player {
	return &Player{native: true, out: os.Stdout}
}

// NewNativePlayer creates a player that never writes to the terminal.
// The TUI rings its own bell when this player fails.
func NewNativePlayer() *Player {
	return &Player{native: true}
}

// PlaySound plays the session completion chime
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(EventComplete)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if p.native && playNative(eventType) {
		return nil
	}
	if p.out == nil {
		return ErrNoNativeSound
	}
	return p.bell()
}

func (p *Player) bell() error {
	if _, err := fmt.Fprint(p.out, "\a"); err != nil {
		return fmt.Errorf("failed to ring terminal bell: %w", err)
	}
	return nil
}
