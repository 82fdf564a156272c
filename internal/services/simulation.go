package services

import (
	"fmt"
	"time"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/ports"
)

// SimulationPlan scripts a headless run
type SimulationPlan struct {
	Mode       string        // Empty keeps the config's default
	PauseAfter time.Duration // Pause each session after this long; 0 never pauses
	PauseFor   time.Duration // How long each pause lasts
	Sessions   int           // Countdowns to run to completion
}

// Validate rejects plans that cannot be played
func (p SimulationPlan) Validate() error {
	if p.Sessions < 0 {
		return fmt.Errorf("sessions must not be negative, got %d", p.Sessions)
	}
	if p.PauseAfter < 0 || p.PauseFor < 0 {
		return fmt.Errorf("pause durations must not be negative")
	}
	return nil
}

// SimulationReport is the state left behind by a simulation
type SimulationReport struct {
	Clock    string            `json:"clock"`
	Elapsed  time.Duration     `json:"elapsed"`
	Guide    domain.GuideState `json:"guide"`
	Mode     string            `json:"mode"`
	Sessions int               `json:"sessions"`
	Stones   []domain.Stone    `json:"stones"`
}

// SimulationService plays SimulationPlans against a manual clock
type SimulationService struct {
	config      domain.SessionConfig
	soundPlayer ports.SoundPlayer
}

// NewSimulationService creates a new SimulationService.
// soundPlayer may be nil to stay silent.
func NewSimulationService(config domain.SessionConfig, soundPlayer ports.SoundPlayer) *SimulationService {
	return &SimulationService{
		config:      config,
		soundPlayer: soundPlayer,
	}
}

// Run drives a fresh SessionTimer through the plan. Every scheduled task,
// including the guide's return to idle, is allowed to settle before the
// report is taken.
func (s *SimulationService) Run(clock ports.ManualClock, views TimerViews, plan SimulationPlan) (SimulationReport, error) {
	if err := plan.Validate(); err != nil {
		return SimulationReport{}, err
	}
	if plan.Mode != "" {
		if _, err := s.config.Lookup(plan.Mode); err != nil {
			return SimulationReport{}, err
		}
	}

	timer := NewSessionTimer(s.config, clock, views, s.soundPlayer)
	if plan.Mode != "" {
		timer.SelectMode(plan.Mode)
	}

	total := time.Duration(timer.State().TotalTime) * TickInterval
	pause := plan.PauseAfter > 0 && plan.PauseAfter < total

	logging.Logger.Debug("Simulation started",
		"mode", timer.Mode().Name,
		"sessions", plan.Sessions,
		"pause_after", plan.PauseAfter.String(),
		"pause_for", plan.PauseFor.String())

	for i := 0; i < plan.Sessions; i++ {
		timer.Start()
		if pause {
			clock.Advance(plan.PauseAfter)
			timer.TogglePause()
			clock.Advance(plan.PauseFor)
			timer.TogglePause()
			clock.Advance(total - plan.PauseAfter)
		} else {
			clock.Advance(total)
		}
	}
	if plan.Sessions > 0 {
		clock.Advance(GuideResetDelay)
	}

	state := timer.State()
	report := SimulationReport{
		Clock:    domain.FormatClock(state.TimeLeft),
		Elapsed:  clock.Now(),
		Guide:    timer.Guide(),
		Mode:     timer.Mode().Name,
		Sessions: timer.Sessions(),
		Stones:   timer.Stones(),
	}

	logging.Logger.Info("Simulation finished",
		"sessions", report.Sessions,
		"stones", len(report.Stones),
		"elapsed", report.Elapsed.String())

	return report, nil
}
