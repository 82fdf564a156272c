package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/cairn/test/integration/harness"
)

type simulateOutput struct {
	Clock    string           `json:"clock"`
	Elapsed  int64            `json:"elapsed"`
	Events   []map[string]any `json:"events"`
	Guide    string           `json:"guide"`
	Mode     string           `json:"mode"`
	Sessions int              `json:"sessions"`
	Stones   []map[string]any `json:"stones"`
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "one session text",
			args:         []string{"simulate"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Sessions:  1")
				harness.AssertStdoutContains(t, result, "Clock:     01:00")
				harness.AssertStdoutContains(t, result, "Stones:    2")
				harness.AssertStdoutContains(t, result, "Guide:     idle")
			},
		},
		{
			name:         "sixty tick scenario json",
			args:         []string{"simulate", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var out simulateOutput
				harness.AssertValidJSON(t, result, &out)
				assert.Equal(t, "01:00", out.Clock)
				assert.Equal(t, 1, out.Sessions)
				assert.Len(t, out.Stones, 2)
				assert.Equal(t, "1min", out.Mode)
				assert.NotEmpty(t, out.Events)
			},
		},
		{
			name:         "several sessions in long mode",
			args:         []string{"simulate", "--mode", "25min", "--sessions", "3", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var out simulateOutput
				harness.AssertValidJSON(t, result, &out)
				assert.Equal(t, "25:00", out.Clock)
				assert.Equal(t, 3, out.Sessions)
				assert.Len(t, out.Stones, 4)
			},
		},
		{
			name:         "pauses lose no time",
			args:         []string{"simulate", "--pause-after", "5", "--pause-for", "30", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var out simulateOutput
				harness.AssertValidJSON(t, result, &out)
				assert.Equal(t, 1, out.Sessions)
				// 90s of wall time plus the 2.2s dance
				assert.Equal(t, int64(92_200_000_000), out.Elapsed)
			},
		},
		{
			name:         "event log",
			args:         []string{"simulate", "--events"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "celebrate")
				harness.AssertStdoutContains(t, result, "dance")
			},
		},
		{
			name:         "unknown mode",
			args:         []string{"simulate", "--mode", "90min"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown mode")
			},
		},
		{
			name:         "negative sessions",
			args:         []string{"simulate", "--sessions", "-1"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
