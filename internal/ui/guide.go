package ui

import (
	"time"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/theme"
)

// guidePoseInterval is how often the dancing guide switches pose
const guidePoseInterval = 250 * time.Millisecond

var guidePoses = map[domain.GuideState][]string{
	domain.GuideDance: {`\(^o^)/`, `/(^o^)\`},
	domain.GuideIdle:  {` (-_-) `},
	domain.GuideWave:  {` (•‿•)/`},
}

var guideCaptions = map[domain.GuideState]string{
	domain.GuideDance: "a stone for the cairn!",
	domain.GuideIdle:  "resting",
	domain.GuideWave:  "focus time",
}

// Guide implements ports.GuideIndicator as a small mascot
type Guide struct {
	lastSwap time.Time
	pose     int
	state    domain.GuideState
}

// NewGuide creates an idle guide
func NewGuide() *Guide {
	return &Guide{state: domain.GuideIdle}
}

// ShowGuide switches the mascot pose
func (g *Guide) ShowGuide(state domain.GuideState) {
	g.state = state
	g.pose = 0
	g.lastSwap = time.Time{}
}

// State returns the current pose
func (g *Guide) State() domain.GuideState {
	return g.state
}

// Animating reports whether the guide needs frames
func (g *Guide) Animating() bool {
	return len(guidePoses[g.state]) > 1
}

// Frame alternates the dance poses
func (g *Guide) Frame(now time.Time) {
	if !g.Animating() {
		return
	}
	if g.lastSwap.IsZero() {
		g.lastSwap = now
		return
	}
	if now.Sub(g.lastSwap) >= guidePoseInterval {
		g.pose = (g.pose + 1) % len(guidePoses[g.state])
		g.lastSwap = now
	}
}

// View renders the mascot with its caption
func (g *Guide) View() string {
	poses := guidePoses[g.state]
	if len(poses) == 0 {
		return ""
	}
	return theme.GuideStyle.Render(poses[g.pose%len(poses)]) + "  " +
		theme.MutedStyle.Render(guideCaptions[g.state])
}
