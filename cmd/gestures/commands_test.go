package gestures

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/testutil"
)

// execute runs the root command with args and returns stdout. The
// caller sets up the environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	stdout := &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

// run executes the root command in a fresh test environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.NewTestEnvironment(t)
	return execute(t, args...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	return testutil.CreateFile(t, t.TempDir(), name, content)
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "--format", "text", "3+AbsoluteUp", "4+RelativeLeft")
	require.NoError(t, err)
	assert.Equal(t,
		"3+AbsoluteUp  3 Finger AbsoluteUp\n"+
			"4+RelativeLeft  4 Finger RelativeLeft\n",
		out)
}

func TestParseCmdErrors(t *testing.T) {
	tests := []struct {
		input string
		code  errors.ErrorCode
		token string
	}{
		{"4+AbsoluteLeft+More+Info", errors.ErrTrailingData, ""},
		{"three+AbsoluteUp", errors.ErrInvalidFingerCount, "three"},
		{"2+", errors.ErrInvalidDirection, ""},
		{"3+Up", errors.ErrInvalidDirection, "Up"},
		{"+AbsoluteUp", errors.ErrMissingFingerCount, ""},
		{"3", errors.ErrMissingDirection, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := run(t, "parse", tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			if tt.token != "" {
				token, ok := errors.GetDetail(err, errors.DetailToken)
				require.True(t, ok)
				assert.Equal(t, tt.token, token)
			}
		})
	}
}

func TestParseCmdNegativeCount(t *testing.T) {
	_, err := run(t, "parse", "--", "-1+AbsoluteUp")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidFingerCount, errors.GetErrorCode(err))
	token, _ := errors.GetDetail(err, errors.DetailToken)
	assert.Equal(t, "-1", token)

	out, err := run(t, "help", "parse")
	require.NoError(t, err)
	assert.Contains(t, out, "gestures parse -- -1+AbsoluteUp")
}

func TestFormatCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "format", "--format", "text", "3", "AbsoluteUp", "-d", "Overview")
		require.NoError(t, err)
		assert.Equal(t, "3+AbsoluteUp  3 Finger AbsoluteUp  # Overview\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "format", "--format", "json", "5", "RelativeBackward")
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"encoded": "5+RelativeBackward",
			"display": "5 Finger RelativeBackward",
			"record": {"fingers": 5, "direction": {"Relative": "RelativeBackward"}}
		}`, out)
	})

	t.Run("negative finger count after dashes", func(t *testing.T) {
		_, err := run(t, "format", "--", "-1", "AbsoluteUp")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFingerCount), err.Error())
		token, _ := errors.GetDetail(err, errors.DetailToken)
		assert.Equal(t, "-1", token)
	})

	t.Run("non numeric finger count", func(t *testing.T) {
		_, err := run(t, "format", "three", "AbsoluteUp")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFingerCount))
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := run(t, "format", "3", "Diagonal")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDirection))
	})
}

func TestDirectionsCmd(t *testing.T) {
	out, err := run(t, "directions", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t,
		"AbsoluteUp\nAbsoluteDown\nAbsoluteLeft\nAbsoluteRight\n"+
			"RelativeForward\nRelativeBackward\nRelativeLeft\nRelativeRight\n",
		out)
}

func TestListCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		out, err := run(t, "list", "--format", "json")
		require.NoError(t, err)

		var bindings []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &bindings))
		require.Len(t, bindings, 5)
		assert.Equal(t, "3+AbsoluteUp", bindings[0]["encoded"])
		assert.Equal(t, "WindowOverview", bindings[0]["action"])
	})

	t.Run("config flag", func(t *testing.T) {
		path := writeFile(t, "g.toml", `
[[gestures]]
fingers = 2
direction = { Absolute = "AbsoluteRight" }
action = "Forward"
`)
		out, err := run(t, "list", "--format", "text", "--config", path)
		require.NoError(t, err)
		assert.Equal(t,
			"2+AbsoluteRight  Forward\n"+
				"3+AbsoluteUp     WindowOverview\n",
			out)
	})

	t.Run("invalid config", func(t *testing.T) {
		path := writeFile(t, "g.toml", "speed = 1\n")
		_, err := run(t, "list", "--config", path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownField))
	})
}

func TestLookupCmd(t *testing.T) {
	out, err := run(t, "lookup", "--format", "text", "4+RelativeForward")
	require.NoError(t, err)
	assert.Equal(t, "4+RelativeForward  NextWorkspace  # Next workspace\n", out)

	_, err = run(t, "lookup", "5+AbsoluteDown")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestCheckCmd(t *testing.T) {
	good := writeFile(t, "good.yaml", `
bindings:
  3+RelativeLeft: Back
`)
	bad := writeFile(t, "bad.toml", `
[bindings]
"3+RelativeLeft+x" = "Back"
`)

	out, err := run(t, "check", "--format", "text", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok, 1 bindings\n", out)

	out, err = run(t, "check", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "effective configuration: ok, 5 bindings\n", out)

	_, err = run(t, "check", good, bad)
	require.Error(t, err)
	assert.True(t, errors.HasErrorCode(err, errors.ErrTrailingData))
}

func TestMigrateCmd(t *testing.T) {
	path := writeFile(t, "old.toml", `
[bindings]
"3+AbsoluteUp" = "WindowOverview"
`)

	for _, target := range []string{"yaml", ""} {
		t.Run("to "+target, func(t *testing.T) {
			args := []string{"migrate", path}
			if target != "" {
				args = append(args, "--to", target)
			}
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, "AbsoluteUp")
			assert.Contains(t, out, "WindowOverview")
			assert.NotContains(t, out, "bindings")

			ext := ".toml"
			if target == "yaml" {
				ext = ".yaml"
			}
			migrated := writeFile(t, "new"+ext, out)
			checked, err := run(t, "check", "--format", "text", migrated)
			require.NoError(t, err, out)
			assert.Equal(t, migrated+": ok, 1 bindings\n", checked)
		})
	}

	t.Run("unknown target", func(t *testing.T) {
		_, err := run(t, "migrate", path, "--to", "ini")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenConfigCmd(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		out, err := run(t, "gen-config")
		require.NoError(t, err)
		assert.Contains(t, out, "# [[gestures]]")
	})

	t.Run("write", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)

		out, err := execute(t, "gen-config", "-w", "--format", "text")
		require.NoError(t, err)
		assert.Equal(t, "Wrote configuration template to "+env.UserConfigPath()+"\n", out)

		content := testutil.ReadFile(t, env.UserConfigPath())
		assert.Contains(t, content, `# "3+AbsoluteUp" = "WindowOverview"`)

		_, err = execute(t, "gen-config", "-w")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestUserConfigIsUsed(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteUserConfig(`
[bindings]
"3+AbsoluteUp" = "Launcher"
`)

	out, err := execute(t, "lookup", "--format", "text", "3+AbsoluteUp")
	require.NoError(t, err)
	assert.Equal(t, "3+AbsoluteUp  Launcher\n", out)
}

func TestTopicsCmd(t *testing.T) {
	out, err := run(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  config\n")
	assert.Contains(t, out, "  directions\n")
	assert.Contains(t, out, "  encoding\n")
	assert.Contains(t, out, "  --format\n")

	out, err = run(t, "help", "encoding")
	require.NoError(t, err)
	assert.Contains(t, out, "<fingers>+<direction>")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gestures version dev\n  commit: unknown\n  built:  unknown\n", out)
}

func TestCompletionCmd(t *testing.T) {
	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "gestures")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	groups := map[string]string{}
	for _, c := range cmd.Commands() {
		groups[c.Name()] = c.GroupID
	}
	assert.Equal(t, "gestures", groups["parse"])
	assert.Equal(t, "config", groups["migrate"])
	assert.Equal(t, "misc", groups["topics"])

	_, err := run(t)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = run(t, "list", "--format", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.Newf(errors.ErrInvalidDirection, "unknown direction %q", "Up").
		WithDetail(errors.DetailToken, "Up")
	PrintError(&buf, err)

	assert.Contains(t, buf.String(), "[INVALID_DIRECTION] unknown direction \"Up\"")
	assert.Contains(t, buf.String(), `token: "Up"`)
}
