package topology

import (
	"errors"
	"fmt"

	"sculpt-editor/action"
	"sculpt-editor/partial"
	"sculpt-editor/winged"
)

// ErrNotSplittable is returned for edges that do not separate two distinct
// triangles.
var ErrNotSplittable = errors.New("topology: edge cannot be split")

// SplitEdge inserts a vertex in the middle of an edge and splits both
// adjacent triangles in two.
type SplitEdge struct {
	action.Composite
	vertex *winged.Vertex
}

// Splittable reports why e cannot be split, or nil.
func Splittable(e *winged.Edge) error {
	left, right := e.LeftFace(), e.RightFace()
	if left == nil || right == nil {
		return fmt.Errorf("edge %d is a boundary: %w", e.Index(), ErrNotSplittable)
	}
	if left == right || !left.IsTriangle() || !right.IsTriangle() {
		return fmt.Errorf("edge %d does not separate two triangles: %w", e.Index(), ErrNotSplittable)
	}
	if e.LeftSuccessor().SecondVertex(left) == e.RightSuccessor().SecondVertex(right) {
		return fmt.Errorf("edge %d has a single opposite vertex: %w", e.Index(), ErrNotSplittable)
	}
	return nil
}

// Vertex returns the inserted vertex after a successful Run.
func (a *SplitEdge) Vertex() *winged.Vertex { return a.vertex }

// Run splits e at its midpoint and records every write. Nothing is written
// when e cannot be split.
//
// Before, with left face (v1, v2, a) and right face (v2, v1, b):
//
//	     a                  a
//	   /   \              / | \
//	v1 ----- v2   =>   v1 - m - v2
//	   \   /              \ | /
//	     b                  b
//
// e then runs from v1 to m with faces (v1, m, a) and (m, v1, b). The new
// edge runs from m to v2 with the new faces (m, v2, a) and (v2, m, b).
func (a *SplitEdge) Run(m *winged.Mesh, e *winged.Edge) error {
	if err := Splittable(e); err != nil {
		return err
	}

	left, right := e.LeftFace(), e.RightFace()
	v1, v2 := e.Vertex1(), e.Vertex2()
	leftSucc, leftPred := e.LeftSuccessor(), e.LeftPredecessor()
	rightSucc, rightPred := e.RightSuccessor(), e.RightPredecessor()
	va := leftSucc.SecondVertex(left)
	vb := rightSucc.SecondVertex(right)

	mid := v1.Position(m).Lerp(v2.Position(m), 0.5)
	vm := action.Add(a, new(partial.Create)).Vertex(m, mid)
	e2 := action.Add(a, new(partial.Create)).Edge(m)
	ea := action.Add(a, new(partial.Create)).Edge(m)
	eb := action.Add(a, new(partial.Create)).Edge(m)
	left2 := action.Add(a, new(partial.Create)).Face(m)
	right2 := action.Add(a, new(partial.Create)).Face(m)

	a.edge().Vertex2(e, vm)
	a.edge().LeftSuccessor(e, ea)
	a.edge().RightPredecessor(e, eb)

	a.link(e2, vm, v2, left2, right2, ea, leftSucc, rightPred, eb)
	a.link(ea, vm, va, left, left2, e, leftPred, leftSucc, e2)
	a.link(eb, vm, vb, right2, right, e2, rightPred, rightSucc, e)

	a.edge().Face(leftSucc, left, left2)
	a.edge().Predecessor(leftSucc, left2, e2)
	a.edge().Successor(leftSucc, left2, ea)

	a.edge().Predecessor(leftPred, left, ea)
	a.edge().Successor(rightSucc, right, eb)

	a.edge().Face(rightPred, right, right2)
	a.edge().Predecessor(rightPred, right2, eb)
	a.edge().Successor(rightPred, right2, e2)

	action.Add(a, new(partial.ModifyFace)).Edge(left, e)
	action.Add(a, new(partial.ModifyFace)).Edge(right, e)
	action.Add(a, new(partial.ModifyFace)).Edge(left2, e2)
	action.Add(a, new(partial.ModifyFace)).Edge(right2, e2)

	action.Add(a, new(partial.ModifyVertex)).Edge(vm, e)
	action.Add(a, new(partial.ModifyVertex)).Edge(v2, e2)

	for _, f := range []*winged.Face{left, right, left2, right2} {
		if err := a.writeIndices(m, f); err != nil {
			return err
		}
	}
	for _, v := range []*winged.Vertex{vm, v1, v2, va, vb} {
		action.Add(a, new(partial.ModifyVertex)).WriteInterpolatedNormal(m, v)
	}
	a.vertex = vm
	return nil
}

// link records every field of a freshly created edge.
func (a *SplitEdge) link(e *winged.Edge, v1, v2 *winged.Vertex, left, right *winged.Face,
	leftPred, leftSucc, rightPred, rightSucc *winged.Edge,
) {
	a.edge().Vertex1(e, v1)
	a.edge().Vertex2(e, v2)
	a.edge().LeftFace(e, left)
	a.edge().RightFace(e, right)
	a.edge().LeftPredecessor(e, leftPred)
	a.edge().LeftSuccessor(e, leftSucc)
	a.edge().RightPredecessor(e, rightPred)
	a.edge().RightSuccessor(e, rightSucc)
}

func (a *SplitEdge) writeIndices(m *winged.Mesh, f *winged.Face) error {
	for i, v := range f.Vertices() {
		write := new(partial.ModifyVertex)
		if err := write.WriteIndex(m, v, f.FirstIndexNumber()+uint32(i)); err != nil {
			return err
		}
		a.Append(write)
	}
	return nil
}

func (a *SplitEdge) edge() *partial.ModifyEdge {
	return action.Add(a, new(partial.ModifyEdge))
}
