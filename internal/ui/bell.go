package ui

import (
	"time"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/ports"
)

// bellHold is how long BEL stays at the start of the frame. It outlasts a
// renderer flush; the line is unchanged meanwhile so it is written once.
const bellHold = 100 * time.Millisecond

// Sound selects how a completed session sounds
type Sound struct {
	Bell   bool              // Ring the terminal bell when Player is nil or fails
	Player ports.SoundPlayer // Tried first
}

// terminalBell rings the bell as part of a rendered frame, so the byte goes
// out with the renderer's own writes instead of racing them
type terminalBell struct {
	clear     ports.Task
	ringing   bool
	scheduler ports.Scheduler
}

func newTerminalBell(scheduler ports.Scheduler) *terminalBell {
	return &terminalBell{scheduler: scheduler}
}

func (b *terminalBell) ring() {
	if b.clear != nil {
		b.clear.Cancel()
	}
	b.ringing = true
	b.clear = b.scheduler.After(bellHold, func() {
		b.ringing = false
		b.clear = nil
	})
}

// decorate prefixes the frame with BEL while the bell rings
func (b *terminalBell) decorate(view string) string {
	if b == nil || !b.ringing {
		return view
	}
	return "\a" + view
}

// chime implements ports.SoundPlayer for the model
type chime struct {
	bell   *terminalBell
	player ports.SoundPlayer
}

// newChime returns nil when the sound is off
func newChime(sound Sound, bell *terminalBell) ports.SoundPlayer {
	if sound.Player == nil && bell == nil {
		return nil
	}
	return &chime{bell: bell, player: sound.Player}
}

func (c *chime) PlaySound() error {
	return c.PlaySoundForEvent(domain.SoundComplete)
}

func (c *chime) PlaySoundForEvent(event string) error {
	if c.player != nil {
		err := c.player.PlaySoundForEvent(event)
		if err == nil || c.bell == nil {
			return err
		}
		logging.Logger.Debug("Falling back to terminal bell", "event", event, "error", err)
	}
	c.bell.ring()
	return nil
}
