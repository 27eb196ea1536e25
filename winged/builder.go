package winged

import (
	"errors"
	"fmt"

	"sculpt-editor/math"
)

// ErrInvalidTriangles is returned by FromTriangles for input that does not
// describe an oriented 2-manifold triangle mesh.
var ErrInvalidTriangles = errors.New("winged: invalid triangle list")

type edgeKey struct{ a, b uint32 }

func keyOf(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// FromTriangles builds a winged mesh from positions and a counter-clockwise
// triangle list. Vertex normals are initialized to their interpolated normals.
func FromTriangles(positions []math.Vec3, triangles []uint32) (*Mesh, error) {
	if len(triangles)%3 != 0 {
		return nil, fmt.Errorf("%d indices is not a multiple of 3: %w", len(triangles), ErrInvalidTriangles)
	}

	m := NewMesh()
	for _, p := range positions {
		m.AddVertex(p)
	}

	edges := make(map[edgeKey]*Edge, len(triangles))
	for t := 0; t < len(triangles); t += 3 {
		tri := [3]uint32{triangles[t], triangles[t+1], triangles[t+2]}
		for _, i := range tri {
			if int(i) >= len(positions) {
				return nil, fmt.Errorf("triangle %d references vertex %d: %w", t/3, i, ErrInvalidTriangles)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, fmt.Errorf("triangle %d is degenerate: %w", t/3, ErrInvalidTriangles)
		}

		f := m.AddFace()
		var loop [3]*Edge
		for k := 0; k < 3; k++ {
			from, to := m.vertices[tri[k]], m.vertices[tri[(k+1)%3]]
			key := keyOf(from.index, to.index)

			e, ok := edges[key]
			switch {
			case !ok:
				e = m.AddEdge()
				e.vertex1, e.vertex2 = from, to
				e.leftFace = f
				edges[key] = e
			case e.vertex1 == to && e.rightFace == nil:
				e.rightFace = f
			default:
				return nil, fmt.Errorf("edge %d-%d is shared by more than two faces or misoriented: %w",
					from.index, to.index, ErrInvalidTriangles)
			}
			if from.edge == nil {
				from.edge = e
			}
			loop[k] = e
		}

		for k := 0; k < 3; k++ {
			loop[k].SetSuccessor(f, loop[(k+1)%3])
			loop[k].SetPredecessor(f, loop[(k+2)%3])
		}
		f.edge = loop[0]
		m.WriteIndices(f)
	}

	m.WriteAllNormals()
	return m, nil
}
