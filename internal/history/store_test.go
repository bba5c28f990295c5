package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndLast(t *testing.T) {
	s := NewStore()
	s.Add("echo one")
	s.Add("echo two")
	s.Add("echo three")

	assert.Equal(t, []string{"echo one", "echo two", "echo three"}, s.All())
	assert.Equal(t, []string{"echo two", "echo three"}, s.Last(2))
	assert.Equal(t, s.All(), s.Last(100))
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "histfile")

	s := NewStore()
	s.Add("echo one")
	s.Add("echo two")
	require.NoError(t, s.WriteFile(path))

	loaded := NewStore()
	require.NoError(t, loaded.LoadFile(path))
	assert.Equal(t, s.All(), loaded.All())
}

func TestAppendIsIdempotentWithoutNewEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "histfile")

	s := NewStore()
	s.Add("echo one")
	require.NoError(t, s.AppendFile(path))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.AppendFile(path))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppendOnlyWritesNewEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "histfile")

	s := NewStore()
	s.Add("echo one")
	require.NoError(t, s.AppendFile(path))

	s.Add("echo two")
	require.NoError(t, s.AppendFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "echo one\necho two\n", string(data))
}

func TestLoadDiscardsEmptyLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "histfile")
	require.NoError(t, os.WriteFile(path, []byte("echo one\n\necho two\n\n"), 0o644))

	s := NewStore()
	require.NoError(t, s.LoadFile(path))
	assert.Equal(t, []string{"echo one", "echo two"}, s.All())
}
