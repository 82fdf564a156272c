package domain

// Sound events the widget can chime for
const (
	SoundComplete = "complete"
	SoundPause    = "pause"
	SoundStart    = "start"
)

// SoundEvents lists the known sound events
func SoundEvents() []string {
	return []string{SoundComplete, SoundPause, SoundStart}
}
