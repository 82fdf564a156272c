//go:build linux

package sound

import "os/exec"

type linuxSound struct {
	cmd  string
	args []string
}

// playNative starts paplay (PulseAudio) or aplay (ALSA) without waiting for
// playback to finish
func playNative(eventType string) bool {
	var sounds []linuxSound

	switch eventType {
	case EventComplete:
		sounds = []linuxSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case EventStart:
		sounds = []linuxSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	default:
		sounds = []linuxSound{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, s := range sounds {
		cmd := exec.Command(s.cmd, s.args...)
		if err := cmd.Start(); err == nil {
			go cmd.Wait()
			return true
		}
	}
	return false
}
