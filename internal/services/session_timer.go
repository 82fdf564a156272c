package services

import (
	"time"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/ports"
)

const (
	// GuideResetDelay is how long the guide dances after a completion
	GuideResetDelay = 2200 * time.Millisecond

	// TickInterval is the countdown resolution
	TickInterval = time.Second
)

// TimerViews groups the passive render collaborators driven by a SessionTimer.
// Nil fields are replaced with no-op views.
type TimerViews struct {
	Cairn       ports.CairnRenderer
	Celebration ports.CelebrationEffect
	Counter     ports.SessionCounterDisplay
	Display     ports.TimerDisplay
	Guide       ports.GuideIndicator
}

// SessionTimer is the countdown controller. It owns the timer state, the
// session counter and the cairn, and pushes every change to its views.
// All methods must be called from the scheduler's event loop.
type SessionTimer struct {
	cairn       *domain.Cairn
	config      domain.SessionConfig
	guide       domain.GuideState
	guideReset  ports.Task
	mode        domain.Mode
	scheduler   ports.Scheduler
	sessions    int
	soundPlayer ports.SoundPlayer
	state       domain.TimerState
	tick        ports.Task
	views       TimerViews
}

// NewSessionTimer creates an idle timer on the config's default mode and
// renders the initial state. soundPlayer may be nil to stay silent.
func NewSessionTimer(
	config domain.SessionConfig,
	scheduler ports.Scheduler,
	views TimerViews,
	soundPlayer ports.SoundPlayer,
) *SessionTimer {
	mode := config.Default()
	s := &SessionTimer{
		cairn:       domain.NewCairn(),
		config:      config,
		guide:       domain.GuideIdle,
		mode:        mode,
		scheduler:   scheduler,
		soundPlayer: soundPlayer,
		state:       domain.NewTimerState(mode.Seconds),
		views:       views.withDefaults(),
	}

	s.views.Display.ShowMode(mode.Name)
	s.views.Display.ShowTime(s.state.TimeLeft)
	s.views.Display.ShowControls(false)
	s.views.Display.ShowPaused(false)
	s.views.Counter.ShowSessions(0)
	s.views.Cairn.RenderCairn(s.cairn.Stones(), false)
	s.views.Guide.ShowGuide(domain.GuideIdle)

	logging.Logger.Debug("Session timer created", "mode", mode.Name, "seconds", mode.Seconds)
	return s
}

// Start begins the countdown. Ignored while a countdown is in progress.
func (s *SessionTimer) Start() {
	if s.state.Running {
		return
	}

	s.state.Running = true
	s.state.Paused = false
	s.startTicking()

	s.views.Display.ShowControls(true)
	s.views.Display.ShowPaused(false)
	s.setGuide(domain.GuideWave)

	logging.Logger.Debug("Countdown started", "mode", s.mode.Name, "time_left", s.state.TimeLeft)
}

// TogglePause pauses a running countdown or resumes a paused one.
// Ignored while idle.
func (s *SessionTimer) TogglePause() {
	if !s.state.Running {
		return
	}

	if s.state.Paused {
		s.state.Paused = false
		s.startTicking()
		s.views.Display.ShowPaused(false)
		s.setGuide(domain.GuideWave)
		logging.Logger.Debug("Countdown resumed", "time_left", s.state.TimeLeft)
		return
	}

	s.state.Paused = true
	s.stopTicking()
	s.views.Display.ShowPaused(true)
	s.setGuide(domain.GuideIdle)
	logging.Logger.Debug("Countdown paused", "time_left", s.state.TimeLeft)
}

// Reset abandons any countdown and returns to idle with the full duration.
// The session counter and the cairn are kept.
func (s *SessionTimer) Reset() {
	s.stopTicking()
	s.state = domain.NewTimerState(s.state.TotalTime)

	s.views.Display.ShowTime(s.state.TimeLeft)
	s.views.Display.ShowControls(false)
	s.views.Display.ShowPaused(false)
	s.setGuide(domain.GuideIdle)

	logging.Logger.Debug("Countdown reset", "total_time", s.state.TotalTime)
}

// SelectMode switches the session length. It only applies while idle and
// reports whether the mode changed.
func (s *SessionTimer) SelectMode(name string) bool {
	if s.state.Running {
		logging.Logger.Debug("Mode change ignored while running", "mode", name)
		return false
	}

	mode, err := s.config.Lookup(name)
	if err != nil {
		logging.Logger.Warn("Mode change ignored", "error", err)
		return false
	}

	s.mode = mode
	s.state = domain.NewTimerState(mode.Seconds)
	s.views.Display.ShowMode(mode.Name)
	s.views.Display.ShowTime(s.state.TimeLeft)

	logging.Logger.Debug("Mode selected", "mode", mode.Name, "seconds", mode.Seconds)
	return true
}

// State returns a copy of the countdown state
func (s *SessionTimer) State() domain.TimerState {
	return s.state
}

// Sessions returns the number of completed sessions
func (s *SessionTimer) Sessions() int {
	return s.sessions
}

// Stones returns the cairn, bottom first
func (s *SessionTimer) Stones() []domain.Stone {
	return s.cairn.Stones()
}

// Guide returns the current guide pose
func (s *SessionTimer) Guide() domain.GuideState {
	return s.guide
}

// Mode returns the selected mode
func (s *SessionTimer) Mode() domain.Mode {
	return s.mode
}

// Config returns the modes the timer can run
func (s *SessionTimer) Config() domain.SessionConfig {
	return s.config
}

func (s *SessionTimer) onTick() {
	// A tick can still arrive after its task was cancelled
	if !s.state.Running || s.state.Paused {
		return
	}

	if s.state.TimeLeft > 0 {
		s.state.TimeLeft--
		s.views.Display.ShowTime(s.state.TimeLeft)
	}

	if s.state.TimeLeft == 0 {
		s.complete()
	}
}

func (s *SessionTimer) complete() {
	s.stopTicking()
	s.state.Running = false
	s.state.Paused = false

	s.sessions++
	s.views.Counter.ShowSessions(s.sessions)

	s.cairn.Append()
	s.views.Cairn.RenderCairn(s.cairn.Stones(), true)

	s.setGuide(domain.GuideDance)
	s.views.Celebration.Celebrate()
	s.playChime()

	s.state.TimeLeft = s.state.TotalTime
	s.views.Display.ShowTime(s.state.TimeLeft)
	s.views.Display.ShowControls(false)
	s.views.Display.ShowPaused(false)

	s.guideReset = s.scheduler.After(GuideResetDelay, func() {
		s.guideReset = nil
		s.setGuide(domain.GuideIdle)
	})

	logging.Logger.Info("Session completed",
		"mode", s.mode.Name,
		"sessions", s.sessions,
		"stones", s.cairn.Len())
}

func (s *SessionTimer) playChime() {
	if s.soundPlayer == nil {
		return
	}
	if err := s.soundPlayer.PlaySoundForEvent(domain.SoundComplete); err != nil {
		logging.Logger.Warn("Failed to play completion sound", "error", err)
	}
}

// setGuide changes the guide pose. Any pending return to idle is dropped.
func (s *SessionTimer) setGuide(state domain.GuideState) {
	if s.guideReset != nil {
		s.guideReset.Cancel()
		s.guideReset = nil
	}
	s.guide = state
	s.views.Guide.ShowGuide(state)
}

// startTicking installs the periodic tick, replacing any existing one
func (s *SessionTimer) startTicking() {
	s.stopTicking()
	s.tick = s.scheduler.Every(TickInterval, s.onTick)
}

func (s *SessionTimer) stopTicking() {
	if s.tick != nil {
		s.tick.Cancel()
		s.tick = nil
	}
}

func (v TimerViews) withDefaults() TimerViews {
	if v.Cairn == nil {
		v.Cairn = nopView{}
	}
	if v.Celebration == nil {
		v.Celebration = nopView{}
	}
	if v.Counter == nil {
		v.Counter = nopView{}
	}
	if v.Display == nil {
		v.Display = nopView{}
	}
	if v.Guide == nil {
		v.Guide = nopView{}
	}
	return v
}

type nopView struct{}

func (nopView) Celebrate()                       {}
func (nopView) RenderCairn([]domain.Stone, bool) {}
func (nopView) ShowControls(bool)                {}
func (nopView) ShowGuide(domain.GuideState)      {}
func (nopView) ShowMode(string)                  {}
func (nopView) ShowPaused(bool)                  {}
func (nopView) ShowSessions(int)                 {}
func (nopView) ShowTime(int)                     {}
