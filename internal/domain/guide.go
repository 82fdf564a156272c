package domain

// GuideState is the pose of the mascot next to the timer
type GuideState string

const (
	GuideDance GuideState = "dance"
	GuideIdle  GuideState = "idle"
	GuideWave  GuideState = "wave"
)
