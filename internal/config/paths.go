package config

import (
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the cairn home directory
const HomeEnvVar = "CAIRN_HOME"

// GetCairnHome returns CAIRN_HOME or ~/.cairn default
func GetCairnHome() string {
	cairnHome := os.Getenv(HomeEnvVar)
	if cairnHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".cairn"
		}
		return filepath.Join(homeDir, ".cairn")
	}
	return ExpandPath(cairnHome)
}

// GetSettingsPath returns $CAIRN_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetCairnHome(), "settings.json")
}

// GetHostKeyPath returns $CAIRN_HOME/ssh_host_ed25519, the key used by cairn serve
func GetHostKeyPath() string {
	return filepath.Join(GetCairnHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
