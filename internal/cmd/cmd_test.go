package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execCmd creates a new root command, sets up output capture, executes the
// command with the given args, and returns stdout, stderr, and any error.
func execCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// execCmdWithStdin creates a root command with stdin provided, executes it,
// and returns stdout, stderr, and any error.
func execCmdWithStdin(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetIn(bytes.NewBufferString(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// writeConfigFile writes a settings defaults file into a temp dir and
// returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ninjacore.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestRootCmd_HasAllSubcommands(t *testing.T) {
	stdout, _, err := execCmd(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"validate", "clear", "extract", "version"} {
		assert.Contains(t, stdout, name)
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ninjacore")
}

func TestValidateCmd(t *testing.T) {
	t.Run("valid array window", func(t *testing.T) {
		stdout, _, err := execCmd(t, "validate", "--length", "10", "--skip", "6", "--take", "2", "--mode", "array")
		require.NoError(t, err)
		assert.Contains(t, stdout, "valid: skip=6 take=2")
	})

	t.Run("take past end is reported", func(t *testing.T) {
		_, stderr, err := execCmd(t, "validate", "--length", "10", "--skip", "0", "--take", "11", "--mode", "array")
		require.Error(t, err)
		assert.Contains(t, stderr, "take")
		assert.Contains(t, stderr, "out of bounds")
	})

	t.Run("unset flags stay absent", func(t *testing.T) {
		stdout, _, err := execCmd(t, "validate", "--length", "10", "--mode", "array")
		require.NoError(t, err)
		assert.Contains(t, stdout, "valid: skip=0 take=10")
	})

	t.Run("passthrough accepts anything", func(t *testing.T) {
		stdout, _, err := execCmd(t, "validate", "--length", "10", "--skip", "-5", "--take", "100", "--mode", "passthrough")
		require.NoError(t, err)
		assert.Contains(t, stdout, "valid: skip=-5 take=100")
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, _, err := execCmd(t, "validate", "--length", "10", "--mode", "sideways")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown range mode")
	})
}

func TestValidateCmd_ConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "mode: array\n")

	// The config file's array mode makes the oversized take an error...
	_, _, err := execCmd(t, "validate", "--length", "10", "--take", "11", "--config", path)
	require.Error(t, err)

	// ...while an explicit flag still beats the file.
	stdout, _, err := execCmd(t, "validate", "--length", "10", "--take", "11", "--mode", "list", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "valid")
}

func TestClearCmd(t *testing.T) {
	t.Run("clears the window", func(t *testing.T) {
		stdout, _, err := execCmd(t, "clear", "--hex", "deadbeefcafe", "--skip", "1", "--take", "2", "--mode", "array")
		require.NoError(t, err)
		assert.Equal(t, "de0000efcafe", strings.TrimSpace(stdout))
	})

	t.Run("list mode clamps past the end", func(t *testing.T) {
		stdout, _, err := execCmd(t, "clear", "--hex", "deadbeef", "--skip", "3", "--take", "10", "--mode", "list")
		require.NoError(t, err)
		assert.Equal(t, "deadbe00", strings.TrimSpace(stdout))
	})

	t.Run("array mode rejects past the end", func(t *testing.T) {
		_, _, err := execCmd(t, "clear", "--hex", "deadbeef", "--skip", "3", "--take", "10", "--mode", "array")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "take")
	})

	t.Run("bad hex", func(t *testing.T) {
		_, _, err := execCmd(t, "clear", "--hex", "zz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding --hex")
	})
}

func TestExtractCmd(t *testing.T) {
	t.Run("utf-8 by default", func(t *testing.T) {
		stdout, _, err := execCmd(t, "extract", "--text", "hi")
		require.NoError(t, err)
		assert.Equal(t, "6869", strings.TrimSpace(stdout))
	})

	t.Run("iso-8859-1 window", func(t *testing.T) {
		stdout, _, err := execCmd(t, "extract", "--text", "héllo", "--encoding", "iso-8859-1", "--take", "2")
		require.NoError(t, err)
		assert.Equal(t, "68e9", strings.TrimSpace(stdout))
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, _, err := execCmd(t, "extract", "--text", "hi", "--encoding", "klingon")
		require.Error(t, err)
	})

	t.Run("array mode rejects oversized take", func(t *testing.T) {
		_, _, err := execCmd(t, "extract", "--text", "hi", "--take", "3", "--mode", "array")
		require.Error(t, err)
	})

	t.Run("secret reads from stdin when not a terminal", func(t *testing.T) {
		stdout, _, err := execCmdWithStdin(t, "hi\n", "extract", "--secret")
		require.NoError(t, err)
		assert.Equal(t, "6869", strings.TrimSpace(stdout))
	})
}
