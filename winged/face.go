package winged

import "sculpt-editor/math"

// maxRing bounds ring traversals so a corrupted mesh cannot loop forever.
const maxRing = 1 << 12

// Face is a mesh face. Faces of a triangle mesh own three consecutive slots
// of the index buffer starting at FirstIndexNumber.
type Face struct {
	index uint32
	edge  *Edge
}

func (f *Face) Index() uint32 { return f.index }

// OptionalIndex returns None for a nil face.
func (f *Face) OptionalIndex() OptionalIndex { return IndexOf(f) }

func (f *Face) Edge() *Edge     { return f.edge }
func (f *Face) SetEdge(e *Edge) { f.edge = e }

func (f *Face) FirstIndexNumber() uint32 {
	return 3 * f.index
}

// Edges returns the edge loop of f starting at f.Edge().
func (f *Face) Edges() []*Edge {
	if f.edge == nil {
		return nil
	}
	var edges []*Edge
	for e := f.edge; e != nil && len(edges) < maxRing; {
		edges = append(edges, e)
		e = e.Successor(f)
		if e == f.edge {
			break
		}
	}
	return edges
}

// Vertices returns the vertices of f in traversal order.
func (f *Face) Vertices() []*Vertex {
	edges := f.Edges()
	vertices := make([]*Vertex, 0, len(edges))
	for _, e := range edges {
		vertices = append(vertices, e.FirstVertex(f))
	}
	return vertices
}

func (f *Face) NumEdges() int {
	return len(f.Edges())
}

func (f *Face) IsTriangle() bool {
	return f.NumEdges() == 3
}

// Triangle returns the positions of the first three vertices.
func (f *Face) Triangle(m *Mesh) (a, b, c math.Vec3) {
	vs := f.Vertices()
	return vs[0].Position(m), vs[1].Position(m), vs[2].Position(m)
}

func (f *Face) Normal(m *Mesh) math.Vec3 {
	a, b, c := f.Triangle(m)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
