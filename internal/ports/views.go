package ports

import "github.com/renato0307/cairn/internal/domain"

// TimerDisplay renders the countdown and the control layout
type TimerDisplay interface {
	// ShowControls switches between the not-started layout (start only)
	// and the started layout (pause/resume and reset)
	ShowControls(started bool)

	// ShowMode marks the named mode selector as active
	ShowMode(name string)

	// ShowPaused switches the pause/resume label
	ShowPaused(paused bool)

	// ShowTime renders the remaining seconds
	ShowTime(secondsLeft int)
}

// SessionCounterDisplay renders the number of completed sessions
type SessionCounterDisplay interface {
	ShowSessions(count int)
}

// CairnRenderer redraws the whole stone stack
type CairnRenderer interface {
	// RenderCairn clears and redraws every stone, bottom first.
	// When animateLast is true the newest stone drops into place.
	RenderCairn(stones []domain.Stone, animateLast bool)
}

// CelebrationEffect fires a self-clearing particle burst
type CelebrationEffect interface {
	Celebrate()
}

// GuideIndicator shows the mascot pose
type GuideIndicator interface {
	ShowGuide(state domain.GuideState)
}
