package partial

import (
	"fmt"

	"sculpt-editor/action"
	"sculpt-editor/math"
	"sculpt-editor/winged"
)

type createOperation int

const (
	createVertex createOperation = iota + 1
	createEdge
	createFace
)

func (op createOperation) String() string {
	switch op {
	case createVertex:
		return "create-vertex"
	case createEdge:
		return "create-edge"
	case createFace:
		return "create-face"
	}
	return "unset"
}

// Create records the creation of a mesh entity. A new entity has no
// connectivity, a zero normal and zeroed index slots; every field set after
// creation must be recorded by its own partial action.
//
// Undo removes the entity again, which is only possible while it is the last
// of its kind. Redo appends a fresh entity at the recorded index.
type Create struct {
	operation createOperation
	index     uint32
	position  math.Vec3
}

// Vertex appends a vertex at position p.
func (a *Create) Vertex(m *winged.Mesh, p math.Vec3) *winged.Vertex {
	v := m.AddVertex(p)
	a.operation, a.index, a.position = createVertex, v.Index(), p
	return v
}

// Edge appends an edge.
func (a *Create) Edge(m *winged.Mesh) *winged.Edge {
	e := m.AddEdge()
	a.operation, a.index = createEdge, e.Index()
	return e
}

// Face appends a face and its three index slots.
func (a *Create) Face(m *winged.Mesh) *winged.Face {
	f := m.AddFace()
	a.operation, a.index = createFace, f.Index()
	return f
}

func (a *Create) Undo(m *winged.Mesh) error {
	var err error
	switch a.operation {
	case createVertex:
		err = m.RemoveVertex(a.index)
	case createEdge:
		err = m.RemoveEdge(a.index)
	case createFace:
		err = m.RemoveFace(a.index)
	default:
		return ErrUnset
	}
	if err != nil {
		return fmt.Errorf("%s: %w", a.operation, err)
	}
	return nil
}

func (a *Create) Redo(m *winged.Mesh) error {
	b := m.Bounds()
	if err := a.Check(&b, action.New); err != nil {
		return err
	}
	switch a.operation {
	case createVertex:
		m.AddVertex(a.position)
	case createEdge:
		m.AddEdge()
	case createFace:
		m.AddFace()
	}
	return nil
}

// Check verifies that the entity is the last of its kind before an undo, or
// would be appended at its recorded index by a redo, and updates b.
func (a *Create) Check(b *winged.Bounds, which action.Which) error {
	var n *uint32
	switch a.operation {
	case createVertex:
		n = &b.Vertices
	case createEdge:
		n = &b.Edges
	case createFace:
		n = &b.Faces
	default:
		return ErrUnset
	}

	var err error
	if which == action.Old {
		err = b.Remove(n, a.index)
	} else {
		err = b.Append(n, a.index)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", a.operation, err)
	}
	return nil
}
