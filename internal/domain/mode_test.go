package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSessionConfig_Modes(t *testing.T) {
	modes := DefaultSessionConfig.Modes()

	require.Len(t, modes, 2)
	assert.Equal(t, Mode{Name: "1min", Seconds: 60}, modes[0])
	assert.Equal(t, Mode{Name: "25min", Seconds: 1500}, modes[1])
}

func TestSessionConfig_Lookup(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		seconds int
		wantErr bool
	}{
		{"one minute", "1min", 60, false},
		{"pomodoro", "25min", 1500, false},
		{"unknown", "5min", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := DefaultSessionConfig.Lookup(tt.mode)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.seconds, mode.Seconds)
		})
	}
}

func TestSessionConfig_ModesReturnsCopy(t *testing.T) {
	modes := DefaultSessionConfig.Modes()
	modes[0].Seconds = 1

	mode, err := DefaultSessionConfig.Lookup("1min")
	require.NoError(t, err)
	assert.Equal(t, 60, mode.Seconds)
}

func TestNewSessionConfig_SkipsInvalidModes(t *testing.T) {
	cfg := NewSessionConfig(
		Mode{Name: "a", Seconds: 10},
		Mode{Name: "a", Seconds: 20},
		Mode{Name: "zero", Seconds: 0},
		Mode{Name: "", Seconds: 5},
		Mode{Name: "b", Seconds: 30},
	)

	assert.Equal(t, []string{"a", "b"}, cfg.Names())
}

func TestSessionConfig_Default(t *testing.T) {
	assert.Equal(t, "1min", DefaultSessionConfig.Default().Name)

	custom := NewSessionConfig(Mode{Name: "short", Seconds: 5})
	assert.Equal(t, "short", custom.Default().Name)
}

func TestSessionConfig_At(t *testing.T) {
	mode, ok := DefaultSessionConfig.At(1)
	require.True(t, ok)
	assert.Equal(t, "25min", mode.Name)

	_, ok = DefaultSessionConfig.At(2)
	assert.False(t, ok)
	_, ok = DefaultSessionConfig.At(-1)
	assert.False(t, ok)
}

func TestMode_Label(t *testing.T) {
	assert.Equal(t, "1 min", Mode{Seconds: 60}.Label())
	assert.Equal(t, "25 min", Mode{Seconds: 1500}.Label())
	assert.Equal(t, "45 sec", Mode{Seconds: 45}.Label())
}
