package winged

import "fmt"

// Check verifies the winged-edge invariants and that the index buffer
// matches the face loops. It returns an error wrapping ErrInconsistent.
func (m *Mesh) Check() error {
	for _, e := range m.edges {
		if e.vertex1 == nil || e.vertex2 == nil || e.vertex1 == e.vertex2 {
			return fmt.Errorf("edge %d has invalid vertices: %w", e.index, ErrInconsistent)
		}
		if e.leftFace == nil && e.rightFace == nil {
			return fmt.Errorf("edge %d has no face: %w", e.index, ErrInconsistent)
		}
		for _, f := range []*Face{e.leftFace, e.rightFace} {
			if f == nil {
				continue
			}
			succ, pred := e.Successor(f), e.Predecessor(f)
			if succ == nil || pred == nil {
				return fmt.Errorf("edge %d lacks neighbors in face %d: %w", e.index, f.index, ErrInconsistent)
			}
			if succ.Predecessor(f) != e || pred.Successor(f) != e {
				return fmt.Errorf("edge %d is not linked in face %d: %w", e.index, f.index, ErrInconsistent)
			}
			if succ.FirstVertex(f) != e.SecondVertex(f) {
				return fmt.Errorf("edge %d and successor %d disagree on a vertex in face %d: %w",
					e.index, succ.index, f.index, ErrInconsistent)
			}
		}
	}

	for _, f := range m.faces {
		if f.edge == nil || (f.edge.leftFace != f && f.edge.rightFace != f) {
			return fmt.Errorf("face %d has a foreign edge: %w", f.index, ErrInconsistent)
		}
		vs := f.Vertices()
		if len(vs) != 3 {
			return fmt.Errorf("face %d has %d edges: %w", f.index, len(vs), ErrInconsistent)
		}
		slots := m.indices[f.FirstIndexNumber() : f.FirstIndexNumber()+3]
		if !sameCycle(slots, vs) {
			return fmt.Errorf("face %d index slots %v do not match its loop: %w", f.index, slots, ErrInconsistent)
		}
	}

	for _, v := range m.vertices {
		if v.edge != nil && !v.edge.HasVertex(v) {
			return fmt.Errorf("vertex %d points to non-incident edge %d: %w", v.index, v.edge.index, ErrInconsistent)
		}
	}
	return nil
}

// sameCycle reports whether slots is a rotation of the vertex loop.
func sameCycle(slots []uint32, vs []*Vertex) bool {
	for shift := 0; shift < 3; shift++ {
		match := true
		for i := 0; i < 3; i++ {
			if slots[i] != vs[(i+shift)%3].index {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
