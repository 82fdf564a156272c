package ui

import "time"

// Action messages. Each message type represents a specific action the user
// wants to perform. Model handles these messages in updateTimer().

// ChooseModeMsg requests showing the mode chooser dialog
type ChooseModeMsg struct{}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ResetTimerMsg requests abandoning the current countdown
type ResetTimerMsg struct{}

// SelectModeMsg requests switching to the mode at Index (zero-based)
type SelectModeMsg struct {
	Index int
}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// StartTimerMsg requests starting the countdown
type StartTimerMsg struct{}

// TogglePauseMsg requests pausing or resuming the countdown
type TogglePauseMsg struct{}

// frameMsg advances running animations
type frameMsg time.Time
