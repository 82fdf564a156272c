package domain

import (
	"math"
	"time"
)

// Celebration burst parameters
const (
	ConfettiCount    = 32
	ConfettiLifetime = 2400 * time.Millisecond
)

// ConfettiPalette colors are assigned cyclically by particle index so a
// burst always covers the whole palette
var ConfettiPalette = []string{
	"#e07b39", "#78716c", "#a8a29e", "#d6d3d1", "#57534e", "#fdf0e8",
}

// Particle bounds
const (
	ParticleLeftMin     = 10.0 // percent of the container width
	ParticleLeftSpan    = 80.0
	ParticleDelayMax    = 500 * time.Millisecond
	ParticleDurationMin = 700 * time.Millisecond
	ParticleDurationMax = 1400 * time.Millisecond
	ParticleWidthMin    = 6
	ParticleHeightMin   = 5
	ParticleSizeSpan    = 6
)

// ParticleShape is the outline of a confetti particle
type ParticleShape string

const (
	ParticleRound  ParticleShape = "round"
	ParticleSquare ParticleShape = "square"
)

// RandomSource yields floats in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Particle is one piece of confetti
type Particle struct {
	Color    string
	Delay    time.Duration
	Duration time.Duration
	Height   int
	Left     float64
	Shape    ParticleShape
	Width    int
}

// NewBurst draws ConfettiCount particles from rng
func NewBurst(rng RandomSource) []Particle {
	particles := make([]Particle, ConfettiCount)
	for i := range particles {
		left := ParticleLeftMin + rng.Float64()*ParticleLeftSpan
		delay := roundCentis(rng.Float64() * ParticleDelayMax.Seconds())
		duration := roundCentis(ParticleDurationMin.Seconds() +
			rng.Float64()*(ParticleDurationMax-ParticleDurationMin).Seconds())
		width := ParticleWidthMin + int(rng.Float64()*ParticleSizeSpan)
		height := ParticleHeightMin + int(rng.Float64()*ParticleSizeSpan)
		shape := ParticleSquare
		if rng.Float64() > 0.5 {
			shape = ParticleRound
		}

		particles[i] = Particle{
			Color:    ConfettiPalette[i%len(ConfettiPalette)],
			Delay:    delay,
			Duration: duration,
			Height:   height,
			Left:     left,
			Shape:    shape,
			Width:    width,
		}
	}
	return particles
}

// roundCentis rounds seconds down to 10ms resolution, keeping values
// strictly below their upper bound
func roundCentis(seconds float64) time.Duration {
	return time.Duration(math.Floor(seconds*100)) * 10 * time.Millisecond
}
