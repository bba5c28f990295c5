package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvalheim/nushell/internal/exec"
	"github.com/kvalheim/nushell/internal/history"
)

func testShell(t *testing.T) *Shell {
	t.Helper()
	wd := t.TempDir()
	return &Shell{
		hist: history.NewStore(),
		env: exec.Environment{
			Getenv: os.Getenv,
			Getwd:  func() (string, error) { return wd, nil },
			Chdir:  func(dir string) error { wd = dir; return nil },
		},
	}
}

func TestDispatchExitTerminatesRegardlessOfArgs(t *testing.T) {
	s := testShell(t)
	assert.True(t, s.dispatch("exit"))
	assert.True(t, s.dispatch("exit 1"))
	assert.True(t, s.dispatch("exit now"))
}

func TestDispatchExitMidPipelineIsNotIntercepted(t *testing.T) {
	s := testShell(t)
	assert.False(t, s.dispatch("echo hi | exit"))
}

func TestDispatchBlankLineIsNoop(t *testing.T) {
	s := testShell(t)
	assert.False(t, s.dispatch(""))
}

func TestDispatchSyntaxErrorDoesNotTerminate(t *testing.T) {
	s := testShell(t)
	assert.False(t, s.dispatch("| echo hi"))
}

func TestDispatchRunsRedirectedCommand(t *testing.T) {
	s := testShell(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	assert.False(t, s.dispatch("echo hello > "+target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestDispatchRedirectionOnlyStageIsSkippedNotPanicked(t *testing.T) {
	s := testShell(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	assert.NotPanics(t, func() {
		s.dispatch("> " + target)
	})
}

func TestShellShutdownAppendsHistoryOnce(t *testing.T) {
	s := testShell(t)
	dir := t.TempDir()
	s.histFile = filepath.Join(dir, "histfile")

	s.hist.Add("echo one")
	s.hist.Add("echo two")
	s.shutdown()

	data, err := os.ReadFile(s.histFile)
	require.NoError(t, err)
	assert.Equal(t, "echo one\necho two\n", string(data))

	s.hist.Add("echo three")
	s.shutdown()

	data, err = os.ReadFile(s.histFile)
	require.NoError(t, err)
	assert.Equal(t, "echo one\necho two\necho three\n", string(data))
}

func TestShellShutdownWithoutHistFileIsNoop(t *testing.T) {
	s := testShell(t)
	s.hist.Add("echo one")
	assert.NotPanics(t, func() { s.shutdown() })
}

func TestPromptTextColorsOnlyWhenTTY(t *testing.T) {
	assert.Equal(t, "$ ", promptText(false))
	assert.NotEmpty(t, promptText(true))
}

func TestNewCompleterBuildsFromPathDirectory(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/sh\n"), 0o755))

	c := newCompleter(dir)
	require.NotNil(t, c)
}
