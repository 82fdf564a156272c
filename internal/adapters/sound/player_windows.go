//go:build windows

package sound

import "os/exec"

// playNative plays sounds on Windows using PowerShell
func playNative(eventType string) bool {
	var soundCommands []string

	switch eventType {
	case EventComplete:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case EventStart:
		soundCommands = []string{"[System.Media.SystemSounds]::Question.Play()"}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Start(); err == nil {
			go cmd.Wait()
			return true
		}
	}
	return false
}
