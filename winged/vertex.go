package winged

import "sculpt-editor/math"

// Vertex is a mesh vertex. Position and normal are stored in the mesh buffers.
type Vertex struct {
	index uint32
	edge  *Edge
}

func (v *Vertex) Index() uint32 { return v.index }

// OptionalIndex returns None for a nil vertex.
func (v *Vertex) OptionalIndex() OptionalIndex { return IndexOf(v) }

// Edge returns an arbitrary edge incident to v, or nil.
func (v *Vertex) Edge() *Edge     { return v.edge }
func (v *Vertex) SetEdge(e *Edge) { v.edge = e }

func (v *Vertex) Position(m *Mesh) math.Vec3 {
	return m.positions[v.index]
}

func (v *Vertex) WritePosition(m *Mesh, p math.Vec3) {
	m.positions[v.index] = p
}

// SavedNormal is the normal currently stored in the mesh buffer.
func (v *Vertex) SavedNormal(m *Mesh) math.Vec3 {
	return m.normals[v.index]
}

func (v *Vertex) WriteNormal(m *Mesh, n math.Vec3) {
	m.normals[v.index] = n
}

// InterpolatedNormal averages the normals of the faces around v.
func (v *Vertex) InterpolatedNormal(m *Mesh) math.Vec3 {
	sum := math.Vec3Zero
	for _, f := range v.AdjacentFaces() {
		sum = sum.Add(f.Normal(m))
	}
	return sum.Normalize()
}

// AdjacentEdges walks the edge ring around v. On a boundary the ring is
// open and both directions are followed.
func (v *Vertex) AdjacentEdges() []*Edge {
	start := v.edge
	if start == nil {
		return nil
	}
	edges := []*Edge{start}

	e := start
	for len(edges) <= maxRing {
		f := e.leavingFace(v)
		if f == nil {
			break
		}
		e = e.Predecessor(f)
		if e == nil || e == start {
			return edges
		}
		edges = append(edges, e)
	}

	e = start
	for len(edges) <= maxRing {
		f := e.arrivingFace(v)
		if f == nil {
			break
		}
		e = e.Successor(f)
		if e == nil || e == start {
			break
		}
		edges = append(edges, e)
	}
	return edges
}

func (v *Vertex) AdjacentVertices() []*Vertex {
	edges := v.AdjacentEdges()
	vertices := make([]*Vertex, 0, len(edges))
	for _, e := range edges {
		vertices = append(vertices, e.OtherVertex(v))
	}
	return vertices
}

func (v *Vertex) AdjacentFaces() []*Face {
	edges := v.AdjacentEdges()
	faces := make([]*Face, 0, len(edges))
	for _, e := range edges {
		if f := e.leavingFace(v); f != nil {
			faces = append(faces, f)
		}
	}
	return faces
}

func (v *Vertex) Valence() int {
	return len(v.AdjacentEdges())
}
