// Package topology holds undoable connectivity edits of a winged mesh.
package topology

import (
	"errors"
	"fmt"

	"sculpt-editor/action"
	"sculpt-editor/partial"
	"sculpt-editor/winged"
)

// ErrNotFlippable is returned when an edge does not separate two distinct
// triangles whose opposite vertices are unconnected.
var ErrNotFlippable = errors.New("topology: edge cannot be flipped")

// FlipEdge replaces the diagonal of the quad formed by the two triangles
// adjacent to an edge with the other diagonal.
type FlipEdge struct {
	action.Composite
}

// Flippable reports why e cannot be flipped, or nil.
func Flippable(m *winged.Mesh, e *winged.Edge) error {
	left, right := e.LeftFace(), e.RightFace()
	if left == nil || right == nil {
		return fmt.Errorf("edge %d is a boundary: %w", e.Index(), ErrNotFlippable)
	}
	if left == right || !left.IsTriangle() || !right.IsTriangle() {
		return fmt.Errorf("edge %d does not separate two triangles: %w", e.Index(), ErrNotFlippable)
	}
	a := e.LeftSuccessor().SecondVertex(left)
	b := e.RightSuccessor().SecondVertex(right)
	if a == b {
		return fmt.Errorf("edge %d has a single opposite vertex: %w", e.Index(), ErrNotFlippable)
	}
	if m.FindEdge(a, b) != nil {
		return fmt.Errorf("vertices %d and %d are already connected: %w", a.Index(), b.Index(), ErrNotFlippable)
	}
	return nil
}

// Run flips e and records every write. Nothing is written when e is not
// flippable.
//
// Before, with left face (v1, v2, a) and right face (v2, v1, b):
//
//	    a                a
//	  /   \            / | \
//	v1 --- v2   =>   v1  |  v2
//	  \   /            \ | /
//	    b                b
//
// e then runs from a to b with left face (v2, a, b) and right face (v1, b, a).
func (a *FlipEdge) Run(m *winged.Mesh, e *winged.Edge) error {
	if err := Flippable(m, e); err != nil {
		return err
	}

	left, right := e.LeftFace(), e.RightFace()
	v1, v2 := e.Vertex1(), e.Vertex2()
	leftSucc, leftPred := e.LeftSuccessor(), e.LeftPredecessor()
	rightSucc, rightPred := e.RightSuccessor(), e.RightPredecessor()
	va := leftSucc.SecondVertex(left)
	vb := rightSucc.SecondVertex(right)

	a.edge().Vertex1(e, va)
	a.edge().Vertex2(e, vb)
	a.edge().LeftSuccessor(e, rightPred)
	a.edge().LeftPredecessor(e, leftSucc)
	a.edge().RightSuccessor(e, leftPred)
	a.edge().RightPredecessor(e, rightSucc)

	a.edge().Predecessor(leftSucc, left, rightPred)
	a.edge().Successor(leftSucc, left, e)

	a.edge().Face(rightPred, right, left)
	a.edge().Predecessor(rightPred, left, e)
	a.edge().Successor(rightPred, left, leftSucc)

	a.edge().Face(leftPred, left, right)
	a.edge().Predecessor(leftPred, right, e)
	a.edge().Successor(leftPred, right, rightSucc)

	a.edge().Predecessor(rightSucc, right, leftPred)
	a.edge().Successor(rightSucc, right, e)

	action.Add(a, new(partial.ModifyVertex)).Edge(v1, rightSucc)
	action.Add(a, new(partial.ModifyVertex)).Edge(v2, leftSucc)
	action.Add(a, new(partial.ModifyFace)).Edge(left, e)
	action.Add(a, new(partial.ModifyFace)).Edge(right, e)

	for _, f := range []*winged.Face{left, right} {
		for i, v := range f.Vertices() {
			write := new(partial.ModifyVertex)
			if err := write.WriteIndex(m, v, f.FirstIndexNumber()+uint32(i)); err != nil {
				return err
			}
			a.Append(write)
		}
	}
	for _, v := range []*winged.Vertex{v1, v2, va, vb} {
		action.Add(a, new(partial.ModifyVertex)).WriteInterpolatedNormal(m, v)
	}
	return nil
}

func (a *FlipEdge) edge() *partial.ModifyEdge {
	return action.Add(a, new(partial.ModifyEdge))
}
