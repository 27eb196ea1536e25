package partial

import (
	"fmt"

	"sculpt-editor/action"
	"sculpt-editor/math"
	"sculpt-editor/winged"
)

type vertexOperation int

const (
	vertexEdge vertexOperation = iota + 1
	vertexWriteIndex
	vertexWriteNormal
	vertexMove
)

func (op vertexOperation) String() string {
	switch op {
	case vertexEdge:
		return "edge"
	case vertexWriteIndex:
		return "write-index"
	case vertexWriteNormal:
		return "write-normal"
	case vertexMove:
		return "move"
	}
	return "unset"
}

// ModifyVertex records one change of a vertex field: its edge pointer, its
// normal, its position, or an index-buffer slot written with its index.
type ModifyVertex struct {
	operation vertexOperation
	data      action.Field
}

// Field exposes the recorded transition.
func (a *ModifyVertex) Field() action.Field { return a.data }

// Edge sets the edge pointer of v to e. A nil e clears it.
func (a *ModifyVertex) Edge(v *winged.Vertex, e *winged.Edge) {
	r := &action.Record[winged.OptionalIndex]{}
	r.SetIndexOf(v)
	r.SetValues(v.Edge().OptionalIndex(), e.OptionalIndex())

	a.operation, a.data = vertexEdge, r
	v.SetEdge(e)
}

// Reset clears the edge pointer of v.
func (a *ModifyVertex) Reset(v *winged.Vertex) {
	a.Edge(v, nil)
}

// WriteIndex writes the index of v into an index-buffer slot.
func (a *ModifyVertex) WriteIndex(m *winged.Mesh, v *winged.Vertex, slot uint32) error {
	old, err := m.Index(slot)
	if err != nil {
		return err
	}
	a.operation, a.data = vertexWriteIndex, action.NewRecord(slot, old, v.Index())
	return m.SetIndex(slot, v.Index())
}

// WriteNormal stores normal as the saved normal of v.
func (a *ModifyVertex) WriteNormal(m *winged.Mesh, v *winged.Vertex, normal math.Vec3) {
	a.operation, a.data = vertexWriteNormal, action.NewRecord(v.Index(), v.SavedNormal(m), normal)
	v.WriteNormal(m, normal)
}

// WriteInterpolatedNormal stores the average normal of the faces around v.
func (a *ModifyVertex) WriteInterpolatedNormal(m *winged.Mesh, v *winged.Vertex) {
	a.WriteNormal(m, v, v.InterpolatedNormal(m))
}

// Move writes a new position of v.
func (a *ModifyVertex) Move(m *winged.Mesh, v *winged.Vertex, position math.Vec3) {
	a.operation, a.data = vertexMove, action.NewRecord(v.Index(), v.Position(m), position)
	v.WritePosition(m, position)
}

// Moved records a move that has already been written to the mesh: from is
// the position before it, the current position is the one after.
func (a *ModifyVertex) Moved(m *winged.Mesh, v *winged.Vertex, from math.Vec3) {
	a.operation, a.data = vertexMove, action.NewRecord(v.Index(), from, v.Position(m))
}

func (a *ModifyVertex) Undo(m *winged.Mesh) error { return a.toggle(m, action.Old) }
func (a *ModifyVertex) Redo(m *winged.Mesh) error { return a.toggle(m, action.New) }

// Check verifies that the recorded entity, slot and edge exist.
func (a *ModifyVertex) Check(b *winged.Bounds, _ action.Which) error {
	switch a.operation {
	case vertexWriteIndex:
		return b.Slot(a.data.Index())
	case vertexEdge:
		if err := checkOptional(b.OptionalEdge, a.data); err != nil {
			return err
		}
	case 0:
		return ErrUnset
	}
	return b.Vertex(a.data.Index())
}

func (a *ModifyVertex) toggle(m *winged.Mesh, which action.Which) error {
	if a.operation == 0 {
		return ErrUnset
	}
	if a.operation == vertexWriteIndex {
		return m.SetIndex(a.data.Index(), action.ValueOf[uint32](a.data, which))
	}

	v, err := m.VertexRef(a.data.Index())
	if err != nil {
		return fmt.Errorf("%s: %w", a.operation, err)
	}

	switch a.operation {
	case vertexEdge:
		e, err := m.EdgeFromIndex(action.ValueOf[winged.OptionalIndex](a.data, which))
		if err != nil {
			return fmt.Errorf("%s: %w", a.operation, err)
		}
		v.SetEdge(e)
	case vertexWriteNormal:
		v.WriteNormal(m, action.ValueOf[math.Vec3](a.data, which))
	case vertexMove:
		v.WritePosition(m, action.ValueOf[math.Vec3](a.data, which))
	}
	return nil
}

// checkOptional checks both sides of an optional-index record.
func checkOptional(check func(winged.OptionalIndex) error, f action.Field) error {
	for _, which := range []action.Which{action.Old, action.New} {
		if err := check(action.ValueOf[winged.OptionalIndex](f, which)); err != nil {
			return err
		}
	}
	return nil
}
