// Package tool turns pointer events into recorded mesh edits.
package tool

import (
	"log/slog"

	"sculpt-editor/action"
	"sculpt-editor/config"
	"sculpt-editor/math"
	"sculpt-editor/sculpt"
	"sculpt-editor/winged"
)

const (
	minRadius  = 0.01
	maxRadius  = 1000
	radiusStep = 1.1
)

// Event is a pointer event already turned into a picking ray.
type Event struct {
	Ray   math.Ray
	Left  bool // left button held, or released for Release
	Shift bool
	Wheel float32
}

// Cursor is the brush outline drawn on the surface under the pointer.
type Cursor struct {
	Enabled  bool
	Position math.Vec3
	Normal   math.Vec3
	Radius   float32
}

// Sculpt drives a brush over a mesh and groups everything one stroke
// records into a single history unit.
type Sculpt struct {
	mesh    *winged.Mesh
	history *action.History
	cache   *config.Proxy
	logger  *slog.Logger

	detailFactor float32
	brush        *sculpt.Brush
	cursor       Cursor
	unit         *action.Unit
	movement     math.Plane
}

func NewSculpt(mesh *winged.Mesh, history *action.History, cache *config.Cache, detailFactor float32, logger *slog.Logger) *Sculpt {
	return &Sculpt{
		mesh:         mesh,
		history:      history,
		cache:        cache.Proxy("sculpt"),
		logger:       logger,
		detailFactor: detailFactor,
		brush:        sculpt.NewBrush(),
		unit:         action.NewUnit(),
	}
}

// Initialize loads the brush settings from the cache.
func (t *Sculpt) Initialize() error {
	kind, err := sculpt.ParseKind(config.Get(t.cache, "kind", string(sculpt.Carve)))
	if err != nil {
		return err
	}
	t.brush.SetKind(kind)
	t.brush.SetDetailFactor(t.detailFactor)
	t.brush.SetRadius(config.Get(t.cache, "radius", float32(0.2)))
	t.brush.SetStepWidthFactor(config.Get(t.cache, "step-width-factor", float32(0.3)))
	t.brush.SetIntensity(config.Get(t.cache, "intensity", float32(0.05)))
	t.brush.SetSubdivide(config.Get(t.cache, "subdivide", true))
	t.brush.ResetPosition()
	t.cursor.Radius = t.brush.Radius()

	t.logger.Debug("sculpt tool initialized", "kind", kind, "radius", t.brush.Radius(),
		"subdivide", t.brush.Subdivide())
	return nil
}

func (t *Sculpt) Brush() *sculpt.Brush { return t.brush }
func (t *Sculpt) Cursor() Cursor       { return t.cursor }

// Pending returns the number of actions recorded since the last commit.
func (t *Sculpt) Pending() int { return t.unit.Len() }

func (t *Sculpt) Press(e Event) {
	if t.brush.Kind().DragLike() {
		t.initializeDraglikeStroke(e)
		return
	}
	t.carvelikeStroke(e)
}

func (t *Sculpt) Move(e Event) {
	if t.brush.Kind().DragLike() {
		t.draglikeStroke(e)
		return
	}
	t.carvelikeStroke(e)
}

// Release ends a stroke when the left button goes up.
func (t *Sculpt) Release(e Event) {
	if e.Left {
		t.brush.ResetPosition()
		t.commit()
	}
	t.cursor.Enabled = true
}

// Wheel changes the radius while shift is held.
func (t *Sculpt) Wheel(e Event) {
	if !e.Shift || e.Wheel == 0 {
		return
	}
	r := t.brush.Radius()
	if e.Wheel > 0 {
		r *= radiusStep
	} else {
		r /= radiusStep
	}
	r = min(max(r, minRadius), maxRadius)

	t.brush.SetRadius(r)
	t.cursor.Radius = r
	t.cache.Set("radius", r)
}

func (t *Sculpt) Close() {
	t.commit()
}

// Flush commits what has been recorded so far, so that history can be
// navigated in the middle of a stroke.
func (t *Sculpt) Flush() bool {
	return t.commit()
}

func (t *Sculpt) commit() bool {
	if t.unit.IsEmpty() {
		return false
	}
	n := t.unit.Len()
	if !t.history.AddUnit(t.unit) {
		return false
	}
	t.unit = action.NewUnit()
	t.logger.Debug("sculpt stroke committed", "actions", n)
	return true
}

func (t *Sculpt) sculpt() {
	a := sculpt.NewAction(t.mesh)
	a.Run(t.brush)
	if !a.IsEmpty() {
		t.unit.Append(a)
	}
}

func (t *Sculpt) updateCursor(e Event) (winged.Intersection, bool) {
	hit, ok := t.mesh.Intersect(e.Ray)
	t.cursor.Enabled = ok
	if ok {
		t.cursor.Position = hit.Position
		t.cursor.Normal = hit.Normal
	}
	return hit, ok
}

func (t *Sculpt) carvelikeStroke(e Event) {
	hit, ok := t.updateCursor(e)
	if !ok || !e.Left {
		return
	}
	t.brush.SetNormal(hit.Normal)
	if !t.brush.UpdatePosition(hit.Position) {
		return
	}
	t.brush.SetInvert(e.Shift && t.brush.Kind().Invertible())
	t.sculpt()
	t.brush.SetInvert(false)
}

// initializeDraglikeStroke pins the brush to the hit point and fixes the
// plane through it, facing the camera, that later moves are projected on.
func (t *Sculpt) initializeDraglikeStroke(e Event) {
	if !e.Left {
		t.cursor.Enabled = true
		t.brush.ResetPosition()
		return
	}
	hit, ok := t.mesh.Intersect(e.Ray)
	if !ok {
		t.cursor.Enabled = true
		t.brush.ResetPosition()
		return
	}
	t.brush.SetPosition(hit.Position)
	t.brush.SetNormal(hit.Normal)
	t.cursor.Enabled = false
	t.movement = math.NewPlane(hit.Position, e.Ray.Direction.Negate())
}

func (t *Sculpt) draglikeStroke(e Event) {
	if !e.Left {
		t.updateCursor(e)
		return
	}
	if !t.brush.HasPosition() {
		return
	}
	d, ok := t.movement.Intersect(e.Ray)
	if !ok {
		return
	}
	from := t.brush.Position()
	if t.brush.UpdatePosition(e.Ray.PointAt(d)) {
		t.brush.SetDirection(t.brush.Position().Sub(from))
		t.brush.SetIntensityFactor(1 / t.brush.Radius())
		t.sculpt()
	}
}
