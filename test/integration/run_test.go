package integration_test

import (
	"testing"

	"github.com/renato0307/cairn/test/integration/harness"
)

// These cases fail before the TUI starts, so no terminal is needed
func TestRunValidation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(env *harness.TestEnvironment)
		args    []string
		wantErr string
	}{
		{
			name:    "unknown mode flag",
			args:    []string{"run", "--mode", "90min"},
			wantErr: "invalid mode",
		},
		{
			name: "unknown default mode in settings",
			setup: func(env *harness.TestEnvironment) {
				env.WriteSettings(`{"default_mode": "90min"}`)
			},
			args:    []string{"run"},
			wantErr: "invalid mode",
		},
		{
			name: "unknown key name in settings",
			setup: func(env *harness.TestEnvironment) {
				env.WriteSettings(`{"keys": {"launch": "l"}}`)
			},
			args:    []string{"run"},
			wantErr: "invalid key bindings",
		},
		{
			name: "custom key on a quick mode digit in settings",
			setup: func(env *harness.TestEnvironment) {
				env.WriteSettings(`{"keys": {"reset": "3"}}`)
			},
			args:    []string{"run"},
			wantErr: "'quick_mode' and 'reset'",
		},
		{
			name: "bad environment value",
			setup: func(env *harness.TestEnvironment) {
				env.SetEnv("CAIRN_MAX_LOG_FILES", "many")
			},
			args:    []string{"modes"},
			wantErr: "parse env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, tt.wantErr)
		})
	}
}
