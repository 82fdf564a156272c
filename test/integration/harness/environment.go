package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CAIRN_HOME.
type TestEnvironment struct {
	CairnHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CAIRN_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		CairnHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CAIRN_* variables, points CAIRN_HOME at the temp
// directory and adds any variables set with SetEnv.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+1+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CAIRN_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "CAIRN_HOME="+e.CairnHome)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.CairnHome, "settings.json")
}

// WriteSettings writes raw JSON to the test settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
