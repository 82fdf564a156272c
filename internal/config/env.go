package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment variable names
const (
	DebugEnvVar       = "CAIRN_DEBUG"
	DebugFileEnvVar   = "CAIRN_DEBUG_FILE"
	DefaultModeEnvVar = "CAIRN_DEFAULT_MODE"
	MaxLogFilesEnvVar = "CAIRN_MAX_LOG_FILES"
)

// Env holds the settings that can come from the environment.
// Pointer fields stay nil when the variable is unset.
type Env struct {
	Debug       *bool  `env:"CAIRN_DEBUG"`
	DebugFile   string `env:"CAIRN_DEBUG_FILE"`
	DefaultMode string `env:"CAIRN_DEFAULT_MODE"`
	MaxLogFiles *int   `env:"CAIRN_MAX_LOG_FILES"`
}

// ParseEnv loads the cairn environment variables
func ParseEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}
