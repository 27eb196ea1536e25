package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sculpt-editor/action"
	"sculpt-editor/config"
	"sculpt-editor/core"
	"sculpt-editor/internal/logging"
	"sculpt-editor/math"
	"sculpt-editor/sculpt"
	"sculpt-editor/winged"
)

type fakeSource struct {
	x, y    float64
	buttons map[int]bool
	keys    map[int]bool
	scroll  core.ScrollCallback
}

func newFakeSource() *fakeSource {
	return &fakeSource{x: 400, y: 300, buttons: map[int]bool{}, keys: map[int]bool{}}
}

func (s *fakeSource) GetCursorPos() (float64, float64)         { return s.x, s.y }
func (s *fakeSource) IsMouseButtonPressed(button int) bool     { return s.buttons[button] }
func (s *fakeSource) IsKeyPressed(key int) bool                { return s.keys[key] }
func (s *fakeSource) SetScrollCallback(cb core.ScrollCallback) { s.scroll = cb }
func (s *fakeSource) Size() (int, int)                         { return 800, 600 }

func newEditor(t *testing.T) (*Editor, *fakeSource) {
	t.Helper()
	src := newFakeSource()
	cfg := config.Default()
	e, err := NewEditor(src, winged.Icosphere(3, 1), action.NewHistory(cfg.History.MaxDepth),
		config.NewCache(cfg.Cache), cfg, logging.NewNop())
	require.NoError(t, err)
	return e, src
}

func snapshot(m *winged.Mesh) []math.Vec3 {
	return append([]math.Vec3(nil), m.Positions()...)
}

// press runs one frame with key held together with ctrl, then one with all
// keys up.
func press(e *Editor, src *fakeSource, keys ...int) {
	for _, k := range keys {
		src.keys[k] = true
	}
	e.Update()
	for _, k := range keys {
		src.keys[k] = false
	}
	e.Update()
}

func stroke(e *Editor, src *fakeSource) {
	src.buttons[core.MouseLeft] = true
	e.Update()
	for range 3 {
		src.x += 12
		e.Update()
	}
	src.buttons[core.MouseLeft] = false
	e.Update()
}

func TestStrokeUndoRedo(t *testing.T) {
	e, src := newEditor(t)
	before := snapshot(e.Mesh)

	stroke(e, src)
	require.Equal(t, 1, e.History.UndoDepth())
	after := snapshot(e.Mesh)
	assert.NotEqual(t, before, after)

	press(e, src, core.KeyLeftControl, core.KeyZ)
	assert.Equal(t, "Undo", e.StatusText)
	assert.Equal(t, before, snapshot(e.Mesh))

	press(e, src, core.KeyLeftControl, core.KeyZ)
	assert.Equal(t, "Nothing to undo", e.StatusText)

	press(e, src, core.KeyLeftControl, core.KeyLeftShift, core.KeyZ)
	assert.Equal(t, "Redo", e.StatusText)
	assert.Equal(t, after, snapshot(e.Mesh))

	press(e, src, core.KeyRightControl, core.KeyY)
	assert.Equal(t, "Nothing to redo", e.StatusText)
}

func TestUndoMidStrokeFlushesTool(t *testing.T) {
	e, src := newEditor(t)
	before := snapshot(e.Mesh)

	src.buttons[core.MouseLeft] = true
	e.Update()
	require.Positive(t, e.Tool.Pending())

	press(e, src, core.KeyLeftControl, core.KeyZ)
	assert.Equal(t, 0, e.Tool.Pending())
	assert.Equal(t, before, snapshot(e.Mesh))
	assert.Equal(t, 1, e.History.RedoDepth())
}

func TestFlipEdgeUnderCursor(t *testing.T) {
	e, src := newEditor(t)
	before := snapshot(e.Mesh)
	indices := append([]uint32(nil), e.Mesh.Indices()...)

	press(e, src, core.KeyF)
	require.Equal(t, "Edge flipped", e.StatusText)
	require.NoError(t, e.Mesh.Check())
	assert.NotEqual(t, indices, e.Mesh.Indices())
	assert.Equal(t, before, snapshot(e.Mesh))

	e.Undo()
	assert.Equal(t, indices, e.Mesh.Indices())
	require.NoError(t, e.Mesh.Check())

	src.x, src.y = 0, 0
	press(e, src, core.KeyF)
	assert.Equal(t, "No edge under cursor", e.StatusText)
}

func TestSwitchBrushKind(t *testing.T) {
	e, src := newEditor(t)

	press(e, src, core.Key2)
	assert.Equal(t, sculpt.Drag, e.Tool.Brush().Kind())
	assert.Equal(t, "drag", config.Get(e.cache, "sculpt/kind", ""))

	press(e, src, core.Key3)
	assert.Equal(t, sculpt.Smooth, e.Tool.Brush().Kind())
}

func TestScrollZoomsOrResizes(t *testing.T) {
	e, src := newEditor(t)
	distance := e.Camera.Distance

	src.scroll(0, 1)
	e.Update()
	assert.Less(t, e.Camera.Distance, distance)

	src.keys[core.KeyLeftShift] = true
	src.scroll(0, 1)
	e.Update()
	assert.InDelta(t, 0.22, e.Tool.Brush().Radius(), 1e-6)
}

func TestEscapeQuits(t *testing.T) {
	e, src := newEditor(t)
	press(e, src, core.KeyEscape)
	assert.True(t, e.Quit)
}

func TestMiddleMouseOrbits(t *testing.T) {
	e, src := newEditor(t)
	yaw := e.Camera.Yaw

	src.buttons[core.MouseMiddle] = true
	e.Update()
	src.x += 50
	src.buttons[core.MouseLeft] = true
	e.Update()

	assert.NotEqual(t, yaw, e.Camera.Yaw)
	assert.Equal(t, 0, e.Tool.Pending(), "no sculpting while orbiting")
}
