package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sculpt version dev\n", out)
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "stroke.yaml")
	require.NoError(t, os.WriteFile(script, []byte(`
mesh: {subdivisions: 2, radius: 1}
strokes:
  - samples:
      - {origin: [0.003, 0.002, 5], direction: [0, 0, -1]}
undo: 1
`), 0o644))

	out, err := execute(t, "replay", "--log-level", "error", script)
	require.NoError(t, err)
	assert.Contains(t, out, "mesh:     162 vertices, 320 faces\n")
	assert.Contains(t, out, "strokes:  1\n")
	assert.Contains(t, out, "undone:   1, redone: 0\n")
	assert.Contains(t, out, "history:  0 undo, 1 redo\n")
}

func TestReplayErrors(t *testing.T) {
	_, err := execute(t, "replay", "--log-level", "error", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "replay", "--log-level", "loud", "x.yaml")
	assert.Error(t, err)
}
