package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/cairn/test/integration/harness"
)

// customKeys returns the custom binding listed for name, or nil
func customKeys(t *testing.T, env *harness.TestEnvironment, name string) []any {
	t.Helper()
	result := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
	harness.AssertSuccess(t, result)

	var keys map[string]map[string]any
	harness.AssertValidJSON(t, result, &keys)

	custom, _ := keys[name]["custom"].([]any)
	return custom
}

func TestSettingsKeysList(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "start")
				harness.AssertStdoutContains(t, result, "s, enter")
				harness.AssertStdoutContains(t, result, "p, space")
				harness.AssertStdoutContains(t, result, "?, h")
			},
		},
		{
			name:         "keys is the default settings keys subcommand",
			args:         []string{"settings", "keys"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "choose_mode")
			},
		},
		{
			name: "list shows custom key when configured",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "reset", "x"))
			},
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "reset")
				harness.AssertStdoutContains(t, result, "x")
			},
		},
		{
			name:         "list JSON format",
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var keys map[string]map[string]any
				harness.AssertValidJSON(t, result, &keys)
				assert.Equal(t, []any{"s", "enter"}, keys["start"]["default"])
				assert.NotContains(t, keys["start"], "custom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "set valid key",
			args:         []string{"settings", "keys", "set", "reset", "x"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'reset' to: x")
				assert.Equal(t, []any{"x"}, customKeys(t, env, "reset"))
			},
		},
		{
			name:         "set invalid key name",
			args:         []string{"settings", "keys", "set", "launch", "l"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown key")
			},
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "reset", "z"))
			},
			args:         []string{"settings", "keys", "set", "start", "z"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name:         "set key already used by a quick mode digit fails",
			args:         []string{"settings", "keys", "set", "start", "1"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "'quick_mode' and 'start'")
				assert.Nil(t, customKeys(t, env, "start"))
			},
		},
		{
			name:         "set fewer quick keys than modes warns",
			args:         []string{"settings", "keys", "set", "quick_mode", "a"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "1 of 2 modes have no quick key")
			},
		},
		{
			name:         "set multiple keys with comma",
			args:         []string{"settings", "keys", "set", "pause", "p,space,b"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'pause' to: p, space, b")
				assert.Len(t, customKeys(t, env, "pause"), 3)
			},
		},
		{
			name:         "set empty value fails",
			args:         []string{"settings", "keys", "set", "reset", ""},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "cannot be empty")
			},
		},
		{
			name: "override existing custom key",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "reset", "x"))
			},
			args:         []string{"settings", "keys", "set", "reset", "X"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Equal(t, []any{"X"}, customKeys(t, env, "reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
