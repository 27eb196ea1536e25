package editor

import (
	"fmt"
	"log/slog"

	"sculpt-editor/action"
	"sculpt-editor/camera"
	"sculpt-editor/config"
	"sculpt-editor/core"
	"sculpt-editor/math"
	"sculpt-editor/sculpt"
	"sculpt-editor/tool"
	"sculpt-editor/winged"
)

// Editor ties input, camera, sculpt tool and history together for one mesh.
type Editor struct {
	Mesh    *winged.Mesh
	History *action.History
	Tool    *tool.Sculpt
	Input   *InputManager
	Camera  *camera.Orbit

	// Quit is set when the user asks to leave.
	Quit bool

	// Status info
	StatusText string

	cache  *config.Cache
	source Source
	logger *slog.Logger
}

// NewEditor initializes a new editor instance
func NewEditor(source Source, mesh *winged.Mesh, history *action.History, cache *config.Cache, cfg config.Config, logger *slog.Logger) (*Editor, error) {
	width, height := source.Size()
	cam := camera.NewOrbit(math.Vec3Zero, 4*cfg.Mesh.Radius, 1.0472, aspect(width, height))

	t := tool.NewSculpt(mesh, history, cache, cfg.Editor.Tool.Sculpt.DetailFactor, logger)
	if err := t.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize sculpt tool: %w", err)
	}

	return &Editor{
		Mesh:       mesh,
		History:    history,
		Tool:       t,
		Input:      NewInputManager(source),
		Camera:     cam,
		StatusText: "Ready",
		cache:      cache,
		source:     source,
		logger:     logger,
	}, nil
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Update processes one frame of editor logic
func (e *Editor) Update() {
	e.Input.Update()

	e.handleShortcuts()
	e.handleCameraControls()
	e.handleSculpting()

	e.Input.EndFrame()
}

// Close commits whatever the tool recorded.
func (e *Editor) Close() {
	e.Tool.Close()
}

func (e *Editor) handleShortcuts() {
	if e.Input.IsKeyPressed(core.KeyEscape) {
		e.Quit = true
	}

	// Undo: Ctrl+Z
	if e.Input.IsShortcut(core.KeyZ) && !e.Input.ShiftDown {
		e.Undo()
	}

	// Redo: Ctrl+Shift+Z or Ctrl+Y
	if e.Input.IsShiftShortcut(core.KeyZ) || e.Input.IsShortcut(core.KeyY) {
		e.Redo()
	}

	if e.Input.IsKeyPressed(core.KeyF) && !e.Input.CtrlDown {
		e.FlipEdge(e.pickRay())
	}

	for key, kind := range map[int]sculpt.Kind{core.Key1: sculpt.Carve, core.Key2: sculpt.Drag, core.Key3: sculpt.Smooth} {
		if e.Input.IsKeyPressed(key) {
			e.SetBrushKind(kind)
		}
	}
}

// Undo commits the running stroke, then reverts the last unit.
func (e *Editor) Undo() {
	e.Tool.Flush()
	ok, err := e.History.Undo(e.Mesh)
	switch {
	case err != nil:
		e.StatusText = "Undo failed"
	case !ok:
		e.StatusText = "Nothing to undo"
	default:
		e.StatusText = "Undo"
	}
}

// Redo commits the running stroke, then reapplies the last undone unit.
// A running stroke that recorded anything discards the redo stack first.
func (e *Editor) Redo() {
	e.Tool.Flush()
	ok, err := e.History.Redo(e.Mesh)
	switch {
	case err != nil:
		e.StatusText = "Redo failed"
	case !ok:
		e.StatusText = "Nothing to redo"
	default:
		e.StatusText = "Redo"
	}
}

// SetBrushKind switches the sculpt tool to another deformation.
func (e *Editor) SetBrushKind(kind sculpt.Kind) {
	e.Tool.Close()
	e.cache.Set("sculpt/kind", string(kind))
	if err := e.Tool.Initialize(); err != nil {
		e.logger.Error("failed to switch brush", "kind", kind, "error", err)
		return
	}
	e.StatusText = fmt.Sprintf("Brush: %s", kind)
}

func (e *Editor) handleCameraControls() {
	width, height := e.source.Size()
	e.Camera.UpdateAspectRatio(float32(width), float32(height))

	// Scroll zoom, Shift+scroll resizes the brush
	if e.Input.ScrollDelta != 0 {
		if e.Input.ShiftDown {
			e.Tool.Wheel(e.event(false))
		} else {
			e.Camera.Zoom(-float32(e.Input.ScrollDelta) * 0.25 * e.Camera.Distance)
		}
	}

	// MMB orbit / Shift+MMB pan
	if e.Input.IsMouseDown(core.MouseMiddle) {
		dx := float32(e.Input.MouseDeltaX) * 0.01
		dy := float32(e.Input.MouseDeltaY) * 0.01

		if e.Input.ShiftDown {
			panSpeed := e.Camera.Distance * 0.2
			offset := e.Camera.Right().Mul(-dx * panSpeed).Add(e.Camera.Up().Mul(dy * panSpeed))
			e.Camera.Target = e.Camera.Target.Add(offset)
			e.Camera.UpdatePosition()
		} else {
			e.Camera.Orbit(-dx, -dy)
		}
	}
}

func (e *Editor) handleSculpting() {
	if e.Input.IsMouseDown(core.MouseMiddle) {
		return
	}
	switch {
	case e.Input.IsMousePressed(core.MouseLeft):
		e.Tool.Press(e.event(true))
	case e.Input.IsMouseReleased(core.MouseLeft):
		e.Tool.Release(e.event(true))
	case e.Input.MouseMoved():
		e.Tool.Move(e.event(e.Input.IsMouseDown(core.MouseLeft)))
	}
}

func (e *Editor) event(left bool) tool.Event {
	return tool.Event{
		Ray:   e.pickRay(),
		Left:  left,
		Shift: e.Input.ShiftDown,
		Wheel: float32(e.Input.ScrollDelta),
	}
}
