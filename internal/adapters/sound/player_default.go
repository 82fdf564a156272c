//go:build !darwin && !linux && !windows

package sound

// playNative has no native backend on this platform
func playNative(eventType string) bool {
	return false
}
