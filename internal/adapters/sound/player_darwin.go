//go:build darwin

package sound

import "os/exec"

// playNative plays sounds on macOS using afplay
func playNative(eventType string) bool {
	var soundFiles []string

	switch eventType {
	case EventComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Hero.aiff",
		}
	case EventStart:
		soundFiles = []string{
			"/System/Library/Sounds/Tink.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case EventPause:
		soundFiles = []string{"/System/Library/Sounds/Bottle.aiff"}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			go cmd.Wait()
			return true
		}
	}
	return false
}
