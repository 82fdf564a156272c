package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/ports"
)

// NotificationService plays the widget's sounds on demand
type NotificationService struct {
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(soundPlayer ports.SoundPlayer) *NotificationService {
	return &NotificationService{
		soundPlayer: soundPlayer,
	}
}

// ShouldPlaySound reports whether the event has a sound
func (s *NotificationService) ShouldPlaySound(eventType string) bool {
	return slices.Contains(domain.SoundEvents(), eventType)
}

// PlaySound plays the completion chime
func (s *NotificationService) PlaySound() error {
	logging.Logger.Debug("Playing notification sound")
	return s.soundPlayer.PlaySound()
}

// PlaySoundForEvent plays the sound for a known event type
func (s *NotificationService) PlaySoundForEvent(eventType string) error {
	if !s.ShouldPlaySound(eventType) {
		return fmt.Errorf("unknown sound event %q (valid: %s)",
			eventType, strings.Join(domain.SoundEvents(), ", "))
	}
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	return s.soundPlayer.PlaySoundForEvent(eventType)
}
