package testutil

import (
	"testing"

	"github.com/arthur-debert/gestures/pkg/paths"
)

// TestEnvironment isolates a test from the user's config and state.
type TestEnvironment struct {
	ConfigDir  string
	StateDir   string
	FixtureDir string

	t *testing.T
}

// NewTestEnvironment creates temporary directories and points the
// GESTURES_* overrides at them for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigDir:  t.TempDir(),
		StateDir:   t.TempDir(),
		FixtureDir: t.TempDir(),
		t:          t,
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)

	return env
}

// WriteFixture writes a file outside the config directory and returns its
// path. The extension of name selects the parser when it is loaded.
func (e *TestEnvironment) WriteFixture(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.FixtureDir, name, content)
}

// WriteUserConfig writes the user config file at its XDG location.
func (e *TestEnvironment) WriteUserConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.ConfigDir, paths.ConfigFileName, content)
}

// UserConfigPath returns where the user config file lives.
func (e *TestEnvironment) UserConfigPath() string {
	return paths.New().ConfigFilePath()
}
