package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyBindingValue
	}{
		{"single string", `"s"`, KeyBindingValue{"s"}},
		{"array", `["p", "space"]`, KeyBindingValue{"p", "space"}},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv KeyBindingValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &kv))
			assert.Equal(t, tt.want, kv)
		})
	}
}

func TestKeyBindingValue_MarshalJSON(t *testing.T) {
	single, err := json.Marshal(KeyBindingValue{"s"})
	require.NoError(t, err)
	assert.JSONEq(t, `"s"`, string(single))

	multi, err := json.Marshal(KeyBindingValue{"p", "space"})
	require.NoError(t, err)
	assert.JSONEq(t, `["p","space"]`, string(multi))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"start", "pause", "reset", "help"}

	tests := []struct {
		name    string
		keys    KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid overrides", KeyBindingsConfig{"start": {"g"}, "pause": {"x", "y"}}, ""},
		{"empty list uses default", KeyBindingsConfig{"start": {}}, ""},
		{"unknown name", KeyBindingsConfig{"launch": {"l"}}, "unknown key binding 'launch'"},
		{"empty value", KeyBindingsConfig{"reset": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"start": {"x"}, "reset": {"x"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.True(t, settings.AnimationsEnabled())
	assert.True(t, settings.SoundEnabled())
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnvVar, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "fresh")
	t.Setenv(HomeEnvVar, home)

	off := false
	logs := 5
	in := &Settings{
		Animations:  &off,
		DefaultMode: "25min",
		Keys:        KeyBindingsConfig{"start": {"g"}},
		MaxLogFiles: &logs,
	}
	require.NoError(t, SaveSettings(in))

	out, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.False(t, out.AnimationsEnabled())
	assert.True(t, out.SoundEnabled())
}

func TestSettings_ApplyEnv(t *testing.T) {
	fileDebug := false
	fileLogs := 10
	envDebug := true
	envLogs := 3

	s := &Settings{Debug: &fileDebug, DefaultMode: "1min", MaxLogFiles: &fileLogs}
	s.ApplyEnv(&Env{Debug: &envDebug, MaxLogFiles: &envLogs})

	assert.True(t, *s.Debug)
	assert.Equal(t, 3, *s.MaxLogFiles)
	assert.Equal(t, "1min", s.DefaultMode, "unset env keeps file value")

	s.ApplyEnv(nil)
	assert.True(t, *s.Debug)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestGetSettingsPath_UsesCairnHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnvVar, home)

	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "ssh_host_ed25519"), GetHostKeyPath())
}
