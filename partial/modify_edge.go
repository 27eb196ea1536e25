package partial

import (
	"fmt"

	"sculpt-editor/action"
	"sculpt-editor/winged"
)

type edgeOperation int

const (
	edgeVertex1 edgeOperation = iota + 1
	edgeVertex2
	edgeLeftFace
	edgeRightFace
	edgeLeftPredecessor
	edgeLeftSuccessor
	edgeRightPredecessor
	edgeRightSuccessor
)

var edgeOperationNames = [...]string{
	"unset", "vertex1", "vertex2", "left-face", "right-face",
	"left-predecessor", "left-successor", "right-predecessor", "right-successor",
}

func (op edgeOperation) String() string { return edgeOperationNames[op] }

// ModifyEdge records one pointer field of a winged edge.
type ModifyEdge struct {
	operation edgeOperation
	data      *action.Record[winged.OptionalIndex]
}

// Field exposes the recorded transition.
func (a *ModifyEdge) Field() action.Field { return a.data }

func (a *ModifyEdge) record(op edgeOperation, e *winged.Edge, oldValue, newValue winged.OptionalIndex) {
	a.operation = op
	a.data = action.NewRecord(e.Index(), oldValue, newValue)
}

// Vertex1 sets the vertex e starts at.
func (a *ModifyEdge) Vertex1(e *winged.Edge, v *winged.Vertex) {
	a.record(edgeVertex1, e, e.Vertex1().OptionalIndex(), v.OptionalIndex())
	e.SetVertex1(v)
}

// Vertex2 sets the vertex e ends at.
func (a *ModifyEdge) Vertex2(e *winged.Edge, v *winged.Vertex) {
	a.record(edgeVertex2, e, e.Vertex2().OptionalIndex(), v.OptionalIndex())
	e.SetVertex2(v)
}

// LeftFace sets the face running from Vertex1 to Vertex2 along e.
func (a *ModifyEdge) LeftFace(e *winged.Edge, f *winged.Face) {
	a.record(edgeLeftFace, e, e.LeftFace().OptionalIndex(), f.OptionalIndex())
	e.SetLeftFace(f)
}

// RightFace sets the face running from Vertex2 to Vertex1 along e.
func (a *ModifyEdge) RightFace(e *winged.Edge, f *winged.Face) {
	a.record(edgeRightFace, e, e.RightFace().OptionalIndex(), f.OptionalIndex())
	e.SetRightFace(f)
}

// LeftPredecessor sets the edge before e in the left face.
func (a *ModifyEdge) LeftPredecessor(e, p *winged.Edge) {
	a.record(edgeLeftPredecessor, e, e.LeftPredecessor().OptionalIndex(), p.OptionalIndex())
	e.SetLeftPredecessor(p)
}

// LeftSuccessor sets the edge after e in the left face.
func (a *ModifyEdge) LeftSuccessor(e, s *winged.Edge) {
	a.record(edgeLeftSuccessor, e, e.LeftSuccessor().OptionalIndex(), s.OptionalIndex())
	e.SetLeftSuccessor(s)
}

// RightPredecessor sets the edge before e in the right face.
func (a *ModifyEdge) RightPredecessor(e, p *winged.Edge) {
	a.record(edgeRightPredecessor, e, e.RightPredecessor().OptionalIndex(), p.OptionalIndex())
	e.SetRightPredecessor(p)
}

// RightSuccessor sets the edge after e in the right face.
func (a *ModifyEdge) RightSuccessor(e, s *winged.Edge) {
	a.record(edgeRightSuccessor, e, e.RightSuccessor().OptionalIndex(), s.OptionalIndex())
	e.SetRightSuccessor(s)
}

// Face replaces whichever side of e currently is oldFace with newFace.
// oldFace must be a face of e.
func (a *ModifyEdge) Face(e *winged.Edge, oldFace, newFace *winged.Face) {
	switch {
	case e.IsLeftFace(oldFace):
		a.LeftFace(e, newFace)
	case e.IsRightFace(oldFace):
		a.RightFace(e, newFace)
	default:
		panic(fmt.Sprintf("partial: face %s is not adjacent to edge %d", oldFace.OptionalIndex(), e.Index()))
	}
}

// Predecessor sets the predecessor of e on the side of f.
func (a *ModifyEdge) Predecessor(e *winged.Edge, f *winged.Face, p *winged.Edge) {
	if e.IsLeftFace(f) {
		a.LeftPredecessor(e, p)
	} else {
		a.RightPredecessor(e, p)
	}
}

// Successor sets the successor of e on the side of f.
func (a *ModifyEdge) Successor(e *winged.Edge, f *winged.Face, s *winged.Edge) {
	if e.IsLeftFace(f) {
		a.LeftSuccessor(e, s)
	} else {
		a.RightSuccessor(e, s)
	}
}

func (a *ModifyEdge) Undo(m *winged.Mesh) error { return a.toggle(m, action.Old) }
func (a *ModifyEdge) Redo(m *winged.Mesh) error { return a.toggle(m, action.New) }

// Check verifies that the edge and both recorded values exist.
func (a *ModifyEdge) Check(b *winged.Bounds, _ action.Which) error {
	if a.operation == 0 {
		return ErrUnset
	}
	if err := b.Edge(a.data.Index()); err != nil {
		return err
	}
	switch a.operation {
	case edgeVertex1, edgeVertex2:
		return checkOptional(b.OptionalVertex, a.data)
	case edgeLeftFace, edgeRightFace:
		return checkOptional(b.OptionalFace, a.data)
	default:
		return checkOptional(b.OptionalEdge, a.data)
	}
}

func (a *ModifyEdge) toggle(m *winged.Mesh, which action.Which) error {
	if a.operation == 0 {
		return ErrUnset
	}
	e, err := m.EdgeRef(a.data.Index())
	if err != nil {
		return fmt.Errorf("%s: %w", a.operation, err)
	}
	if err := a.apply(m, e, a.data.Value(which)); err != nil {
		return fmt.Errorf("%s: %w", a.operation, err)
	}
	return nil
}

func (a *ModifyEdge) apply(m *winged.Mesh, e *winged.Edge, value winged.OptionalIndex) error {
	switch a.operation {
	case edgeVertex1, edgeVertex2:
		v, err := m.VertexFromIndex(value)
		if err != nil {
			return err
		}
		if a.operation == edgeVertex1 {
			e.SetVertex1(v)
		} else {
			e.SetVertex2(v)
		}
	case edgeLeftFace, edgeRightFace:
		f, err := m.FaceFromIndex(value)
		if err != nil {
			return err
		}
		if a.operation == edgeLeftFace {
			e.SetLeftFace(f)
		} else {
			e.SetRightFace(f)
		}
	default:
		other, err := m.EdgeFromIndex(value)
		if err != nil {
			return err
		}
		switch a.operation {
		case edgeLeftPredecessor:
			e.SetLeftPredecessor(other)
		case edgeLeftSuccessor:
			e.SetLeftSuccessor(other)
		case edgeRightPredecessor:
			e.SetRightPredecessor(other)
		case edgeRightSuccessor:
			e.SetRightSuccessor(other)
		}
	}
	return nil
}
