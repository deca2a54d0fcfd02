package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/pipesh/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cfgPath, commandLine, debug = "", "", false
	t.Cleanup(func() {
		cfgPath, commandLine, debug = "", "", false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.Flags().Lookup("command").Changed = false
	})

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func setIdentity(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USER", "alice")
	t.Setenv("HOSTNAME", "box")
	return home
}

func TestBuiltinsCmd(t *testing.T) {
	stdout, _, err := execute(t, "builtins")
	require.NoError(t, err)

	assert.Equal(t,
		"cd\tChange the shell working directory.\n"+
			"exit\tExit the shell without waiting for running commands.\n",
		stdout)
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	_, stderr, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Writing default config")
	assert.FileExists(t, filepath.Join(dir, config.ConfigurationName))

	_, stderr, err = execute(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Config already exists")
}

func TestRootCmd_command(t *testing.T) {
	for _, program := range []string{"echo", "cat"} {
		if _, err := exec.LookPath(program); err != nil {
			t.Skipf("%s not available: %v", program, err)
		}
	}
	setIdentity(t)

	stdout, stderr, err := execute(t, "-c", "echo hello | cat")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
	assert.Empty(t, stderr)
}

func TestRootCmd_commandErrors(t *testing.T) {
	setIdentity(t)

	stdout, stderr, err := execute(t, "-c", "| true")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "syntax error near unexpected token '|'\n", stderr)
}

func TestRootCmd_missingConfig(t *testing.T) {
	setIdentity(t)

	_, stderr, err := execute(t, "--config", t.TempDir(), "-c", "true")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, stderr, "did you run init?")
}

func TestRootCmd_config(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skipf("echo not available: %v", err)
	}
	setIdentity(t)

	dir := t.TempDir()
	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)

	stdout, _, err := execute(t, "--config", dir, "-c", "echo configured")
	require.NoError(t, err)
	assert.Equal(t, "configured\n", stdout)
}
