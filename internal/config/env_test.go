package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Unset(t *testing.T) {
	for _, name := range []string{DebugEnvVar, DebugFileEnvVar, DefaultModeEnvVar, MaxLogFilesEnvVar} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	e, err := ParseEnv()

	require.NoError(t, err)
	assert.Nil(t, e.Debug)
	assert.Nil(t, e.MaxLogFiles)
	assert.Empty(t, e.DefaultMode)
}

func TestParseEnv_Values(t *testing.T) {
	t.Setenv(DebugEnvVar, "1")
	t.Setenv(DebugFileEnvVar, "/tmp/cairn.log")
	t.Setenv(DefaultModeEnvVar, "25min")
	t.Setenv(MaxLogFilesEnvVar, "7")

	e, err := ParseEnv()

	require.NoError(t, err)
	require.NotNil(t, e.Debug)
	assert.True(t, *e.Debug)
	assert.Equal(t, "/tmp/cairn.log", e.DebugFile)
	assert.Equal(t, "25min", e.DefaultMode)
	require.NotNil(t, e.MaxLogFiles)
	assert.Equal(t, 7, *e.MaxLogFiles)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv(MaxLogFilesEnvVar, "lots")

	_, err := ParseEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
