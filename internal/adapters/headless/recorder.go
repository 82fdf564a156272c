package headless

import (
	"fmt"
	"time"

	"github.com/renato0307/cairn/internal/domain"
)

// Event kinds written by the Recorder
const (
	EventCairn     = "cairn"
	EventCelebrate = "celebrate"
	EventControls  = "controls"
	EventGuide     = "guide"
	EventMode      = "mode"
	EventPaused    = "paused"
	EventSessions  = "sessions"
)

// Event is one view change observed by the Recorder
type Event struct {
	At    time.Duration `json:"at"`
	Kind  string        `json:"kind"`
	Value string        `json:"value"`
}

// Recorder implements every timer view without drawing anything.
// It keeps the last value pushed to each view and a log of changes.
// Clock updates are kept as state only so a long countdown does not
// flood the log.
type Recorder struct {
	celebrations int
	events       []Event
	guide        domain.GuideState
	mode         string
	now          func() time.Duration
	paused       bool
	secondsLeft  int
	sessions     int
	started      bool
	stones       []domain.Stone
}

// NewRecorder creates a Recorder stamping events with now.
// A nil now stamps every event at zero.
func NewRecorder(now func() time.Duration) *Recorder {
	if now == nil {
		now = func() time.Duration { return 0 }
	}
	return &Recorder{
		guide: domain.GuideIdle,
		now:   now,
	}
}

func (r *Recorder) Celebrate() {
	r.celebrations++
	r.record(EventCelebrate, fmt.Sprintf("%d", r.celebrations))
}

func (r *Recorder) RenderCairn(stones []domain.Stone, animateLast bool) {
	r.stones = append(r.stones[:0], stones...)
	value := fmt.Sprintf("%d", len(stones))
	if animateLast {
		value += " (drop)"
	}
	r.record(EventCairn, value)
}

func (r *Recorder) ShowControls(started bool) {
	r.started = started
	r.record(EventControls, fmt.Sprintf("started=%t", started))
}

func (r *Recorder) ShowGuide(state domain.GuideState) {
	r.guide = state
	r.record(EventGuide, string(state))
}

func (r *Recorder) ShowMode(name string) {
	r.mode = name
	r.record(EventMode, name)
}

func (r *Recorder) ShowPaused(paused bool) {
	r.paused = paused
	r.record(EventPaused, fmt.Sprintf("%t", paused))
}

func (r *Recorder) ShowSessions(count int) {
	r.sessions = count
	r.record(EventSessions, fmt.Sprintf("%d", count))
}

func (r *Recorder) ShowTime(secondsLeft int) {
	r.secondsLeft = secondsLeft
}

// Celebrations returns how many bursts were fired
func (r *Recorder) Celebrations() int { return r.celebrations }

// Clock returns the last rendered clock text
func (r *Recorder) Clock() string { return domain.FormatClock(r.secondsLeft) }

// Events returns a copy of the change log
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Guide() domain.GuideState { return r.guide }
func (r *Recorder) Mode() string             { return r.mode }
func (r *Recorder) Paused() bool             { return r.paused }
func (r *Recorder) Sessions() int            { return r.sessions }
func (r *Recorder) Started() bool            { return r.started }

// Stones returns a copy of the last rendered cairn
func (r *Recorder) Stones() []domain.Stone {
	out := make([]domain.Stone, len(r.stones))
	copy(out, r.stones)
	return out
}

func (r *Recorder) record(kind, value string) {
	// Consecutive duplicates carry no information
	if n := len(r.events); n > 0 && r.events[n-1].Kind == kind && r.events[n-1].Value == value {
		return
	}
	r.events = append(r.events, Event{At: r.now(), Kind: kind, Value: value})
}
