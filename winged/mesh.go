package winged

import (
	"errors"
	"fmt"

	"sculpt-editor/math"
)

var (
	// ErrIndexOutOfRange is returned when an entity index or index-buffer
	// slot does not exist in the mesh.
	ErrIndexOutOfRange = errors.New("winged: index out of range")
	// ErrInconsistent is returned by Check.
	ErrInconsistent = errors.New("winged: inconsistent mesh")
	// ErrNotLast is returned when removing an entity that is not the last of
	// its kind. Removing from the tail keeps every other index stable.
	ErrNotLast = errors.New("winged: entity is not the last of its kind")
)

// Mesh owns the entities and the per-vertex buffers.
type Mesh struct {
	vertices []*Vertex
	edges    []*Edge
	faces    []*Face

	positions []math.Vec3
	normals   []math.Vec3
	indices   []uint32
}

func NewMesh() *Mesh {
	return &Mesh{}
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumEdges() int    { return len(m.edges) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }

func (m *Mesh) Vertices() []*Vertex { return m.vertices }
func (m *Mesh) Edges() []*Edge      { return m.edges }
func (m *Mesh) Faces() []*Face      { return m.faces }

// Positions exposes the position buffer for upload; callers must not modify it.
func (m *Mesh) Positions() []math.Vec3 { return m.positions }
func (m *Mesh) Normals() []math.Vec3   { return m.normals }
func (m *Mesh) Indices() []uint32      { return m.indices }

// AddVertex appends a vertex with the given position and a zero normal.
func (m *Mesh) AddVertex(p math.Vec3) *Vertex {
	v := &Vertex{index: uint32(len(m.vertices))}
	m.vertices = append(m.vertices, v)
	m.positions = append(m.positions, p)
	m.normals = append(m.normals, math.Vec3Zero)
	return v
}

func (m *Mesh) AddEdge() *Edge {
	e := &Edge{index: uint32(len(m.edges))}
	m.edges = append(m.edges, e)
	return e
}

// AddFace appends a face and reserves its three index-buffer slots.
func (m *Mesh) AddFace() *Face {
	f := &Face{index: uint32(len(m.faces))}
	m.faces = append(m.faces, f)
	m.indices = append(m.indices, 0, 0, 0)
	return f
}

// RemoveVertex removes the vertex with index i, which must be the last one.
func (m *Mesh) RemoveVertex(i uint32) error {
	if err := removable("vertex", i, len(m.vertices)); err != nil {
		return err
	}
	m.vertices[i] = nil
	m.vertices = m.vertices[:i]
	m.positions = m.positions[:i]
	m.normals = m.normals[:i]
	return nil
}

// RemoveEdge removes the edge with index i, which must be the last one.
func (m *Mesh) RemoveEdge(i uint32) error {
	if err := removable("edge", i, len(m.edges)); err != nil {
		return err
	}
	m.edges[i] = nil
	m.edges = m.edges[:i]
	return nil
}

// RemoveFace removes the face with index i, which must be the last one,
// together with its index-buffer slots.
func (m *Mesh) RemoveFace(i uint32) error {
	if err := removable("face", i, len(m.faces)); err != nil {
		return err
	}
	m.faces[i] = nil
	m.faces = m.faces[:i]
	m.indices = m.indices[:3*i]
	return nil
}

func removable(kind string, i uint32, n int) error {
	if int(i) >= n {
		return fmt.Errorf("%s %d of %d: %w", kind, i, n, ErrIndexOutOfRange)
	}
	if int(i) != n-1 {
		return fmt.Errorf("%s %d of %d: %w", kind, i, n, ErrNotLast)
	}
	return nil
}

func (m *Mesh) VertexRef(i uint32) (*Vertex, error) {
	if int(i) >= len(m.vertices) {
		return nil, fmt.Errorf("vertex %d of %d: %w", i, len(m.vertices), ErrIndexOutOfRange)
	}
	return m.vertices[i], nil
}

func (m *Mesh) EdgeRef(i uint32) (*Edge, error) {
	if int(i) >= len(m.edges) {
		return nil, fmt.Errorf("edge %d of %d: %w", i, len(m.edges), ErrIndexOutOfRange)
	}
	return m.edges[i], nil
}

func (m *Mesh) FaceRef(i uint32) (*Face, error) {
	if int(i) >= len(m.faces) {
		return nil, fmt.Errorf("face %d of %d: %w", i, len(m.faces), ErrIndexOutOfRange)
	}
	return m.faces[i], nil
}

// VertexFromIndex resolves an optional index; None resolves to nil.
func (m *Mesh) VertexFromIndex(o OptionalIndex) (*Vertex, error) {
	if !o.Valid {
		return nil, nil
	}
	return m.VertexRef(o.Index)
}

// EdgeFromIndex resolves an optional index; None resolves to nil.
func (m *Mesh) EdgeFromIndex(o OptionalIndex) (*Edge, error) {
	if !o.Valid {
		return nil, nil
	}
	return m.EdgeRef(o.Index)
}

// FaceFromIndex resolves an optional index; None resolves to nil.
func (m *Mesh) FaceFromIndex(o OptionalIndex) (*Face, error) {
	if !o.Valid {
		return nil, nil
	}
	return m.FaceRef(o.Index)
}

// Index returns the content of an index-buffer slot.
func (m *Mesh) Index(slot uint32) (uint32, error) {
	if int(slot) >= len(m.indices) {
		return 0, fmt.Errorf("index slot %d of %d: %w", slot, len(m.indices), ErrIndexOutOfRange)
	}
	return m.indices[slot], nil
}

func (m *Mesh) SetIndex(slot, vertex uint32) error {
	if int(slot) >= len(m.indices) {
		return fmt.Errorf("index slot %d of %d: %w", slot, len(m.indices), ErrIndexOutOfRange)
	}
	m.indices[slot] = vertex
	return nil
}

// WriteIndices writes the vertices of a triangle into its slots, starting
// at the first vertex of f.Edge().
func (m *Mesh) WriteIndices(f *Face) {
	for i, v := range f.Vertices()[:3] {
		m.indices[f.FirstIndexNumber()+uint32(i)] = v.index
	}
}

// WriteAllNormals stores the interpolated normal of every vertex.
func (m *Mesh) WriteAllNormals() {
	for _, v := range m.vertices {
		v.WriteNormal(m, v.InterpolatedNormal(m))
	}
}

// FindEdge returns the edge between a and b, or nil.
func (m *Mesh) FindEdge(a, b *Vertex) *Edge {
	for _, e := range a.AdjacentEdges() {
		if e.OtherVertex(a) == b {
			return e
		}
	}
	return nil
}

// VerticesInSphere returns all vertices whose position lies within radius
// of center.
func (m *Mesh) VerticesInSphere(center math.Vec3, radius float32) []*Vertex {
	var result []*Vertex
	r2 := radius * radius
	for _, v := range m.vertices {
		if m.positions[v.index].DistanceSqr(center) <= r2 {
			result = append(result, v)
		}
	}
	return result
}
