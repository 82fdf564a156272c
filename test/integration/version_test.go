package integration_test

import (
	"testing"

	"github.com/renato0307/cairn/test/integration/harness"
)

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "cairn "+harness.TestVersion)
}

func TestHelp(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--help")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "one stone per session")
	for _, command := range []string{"serve", "simulate", "modes", "settings"} {
		harness.AssertStdoutContains(t, result, command)
	}
	harness.AssertStdoutNotContains(t, result, "play-sound")
}
