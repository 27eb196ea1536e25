package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.History.MaxDepth)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sculpt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 800
history:
  max-depth: 5
editor:
  tool:
    sculpt:
      detail-factor: 0.5
cache:
  sculpt/radius: 0.4
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 5, cfg.History.MaxDepth)
	assert.Equal(t, float32(0.5), cfg.Editor.Tool.Sculpt.DetailFactor)
	assert.Equal(t, 0.4, cfg.Cache["sculpt/radius"])
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("histroy:\n  max-depth: 3\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("history:\n  max-depth: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("editor: {tool: {sculpt: {detail-factor: 1}}}\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCacheProxy(t *testing.T) {
	c := NewCache(map[string]any{"sculpt/radius": 0.4, "sculpt/kind": "drag"})
	p := c.Proxy("sculpt")

	assert.Equal(t, float32(0.4), Get(p, "radius", float32(0.2)))
	assert.Equal(t, "drag", Get(p, "kind", "carve"))
	assert.Equal(t, float32(0.3), Get(p, "step-width-factor", float32(0.3)))
	assert.Equal(t, 7, Get(p, "kind", 7), "a string cannot become an int")

	p.Set("radius", float32(2))
	assert.Equal(t, float32(2), Get[float32](c, "sculpt/radius", 0))

	other := c.Proxy("move/")
	_, ok := other.Lookup("radius")
	assert.False(t, ok)
}
