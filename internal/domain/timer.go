package domain

import "fmt"

// Phase is the lifecycle position of a countdown
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePaused  Phase = "paused"
	PhaseRunning Phase = "running"
)

// TimerState is the countdown value and its flags.
// TimeLeft never exceeds TotalTime and never goes below zero.
// Paused is only ever true while Running is true.
type TimerState struct {
	Paused    bool
	Running   bool
	TimeLeft  int
	TotalTime int
}

// NewTimerState returns an idle state for the given duration in seconds
func NewTimerState(totalSeconds int) TimerState {
	return TimerState{
		TimeLeft:  totalSeconds,
		TotalTime: totalSeconds,
	}
}

// Phase derives the lifecycle position from the flags
func (s TimerState) Phase() Phase {
	switch {
	case s.Running && s.Paused:
		return PhasePaused
	case s.Running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// Started reports whether a countdown is in progress (running or paused)
func (s TimerState) Started() bool {
	return s.Running
}

// FormatClock renders seconds as zero-padded MM:SS.
// Negative input renders as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
