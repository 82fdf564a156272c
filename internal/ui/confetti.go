package ui

import (
	"strings"
	"time"

	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/ports"
	"github.com/renato0307/cairn/internal/theme"
)

// Confetti implements ports.CelebrationEffect as falling glyphs.
// A burst clears itself domain.ConfettiLifetime after it fired.
type Confetti struct {
	animate   bool
	burstAt   time.Time
	cleanup   ports.Task
	elapsed   time.Duration
	particles []domain.Particle
	rng       domain.RandomSource
	scheduler ports.Scheduler
}

// NewConfetti creates a celebration effect drawing from rng and clearing
// through scheduler
func NewConfetti(rng domain.RandomSource, scheduler ports.Scheduler, animate bool) *Confetti {
	return &Confetti{
		animate:   animate,
		rng:       rng,
		scheduler: scheduler,
	}
}

// Celebrate replaces any running burst with a new one
func (c *Confetti) Celebrate() {
	c.particles = domain.NewBurst(c.rng)
	c.burstAt = time.Time{}
	c.elapsed = 0

	if c.cleanup != nil {
		c.cleanup.Cancel()
	}
	c.cleanup = c.scheduler.After(domain.ConfettiLifetime, c.clear)
}

func (c *Confetti) clear() {
	c.particles = nil
	c.cleanup = nil
}

// Active reports whether a burst is on screen
func (c *Confetti) Active() bool {
	return len(c.particles) > 0
}

// Particles returns a copy of the particles on screen
func (c *Confetti) Particles() []domain.Particle {
	out := make([]domain.Particle, len(c.particles))
	copy(out, c.particles)
	return out
}

// Frame advances the fall. The first frame after a burst starts the clock.
func (c *Confetti) Frame(now time.Time) {
	if !c.Active() {
		return
	}
	if c.burstAt.IsZero() {
		c.burstAt = now
	}
	c.elapsed = now.Sub(c.burstAt)
}

// View draws the particles into a width x height field. Without
// animations every particle sits in the top row.
func (c *Confetti) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	field := make([][]string, height)
	for r := range field {
		field[r] = make([]string, width)
		for col := range field[r] {
			field[r][col] = " "
		}
	}

	for _, p := range c.particles {
		row := 0
		if c.animate {
			t := c.elapsed - p.Delay
			if t < 0 || t >= p.Duration {
				continue
			}
			row = int(float64(t) / float64(p.Duration) * float64(height))
		}
		col := int(p.Left / 100 * float64(width))
		if row >= height || col >= width {
			continue
		}
		field[row][col] = theme.FillStyle(p.Color).Render(particleGlyph(p))
	}

	lines := make([]string, height)
	for r, cells := range field {
		lines[r] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}

// particleGlyph picks a glyph matching the particle's shape and size
func particleGlyph(p domain.Particle) string {
	big := p.Width+p.Height >= 16
	switch {
	case p.Shape == domain.ParticleRound && big:
		return "●"
	case p.Shape == domain.ParticleRound:
		return "•"
	case big:
		return "■"
	default:
		return "▪"
	}
}
