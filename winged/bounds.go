package winged

import "fmt"

// Bounds counts the entities of a mesh. Replay checks run against Bounds
// instead of the mesh, so that recorded additions and removals can be
// simulated step by step without writing anything.
type Bounds struct {
	Vertices uint32
	Edges    uint32
	Faces    uint32
}

func (m *Mesh) Bounds() Bounds {
	return Bounds{
		Vertices: uint32(len(m.vertices)),
		Edges:    uint32(len(m.edges)),
		Faces:    uint32(len(m.faces)),
	}
}

func (b *Bounds) Vertex(i uint32) error { return within("vertex", i, b.Vertices) }
func (b *Bounds) Edge(i uint32) error   { return within("edge", i, b.Edges) }
func (b *Bounds) Face(i uint32) error   { return within("face", i, b.Faces) }

// Slot checks an index-buffer slot; every face owns three.
func (b *Bounds) Slot(i uint32) error { return within("index slot", i, 3*b.Faces) }

// OptionalVertex, OptionalEdge and OptionalFace accept None.
func (b *Bounds) OptionalVertex(o OptionalIndex) error { return optional(b.Vertex, o) }
func (b *Bounds) OptionalEdge(o OptionalIndex) error   { return optional(b.Edge, o) }
func (b *Bounds) OptionalFace(o OptionalIndex) error   { return optional(b.Face, o) }

// Append checks that i is the next index of a kind counted by n and counts it.
func (b *Bounds) Append(n *uint32, i uint32) error {
	if i != *n {
		return fmt.Errorf("append at %d of %d: %w", i, *n, ErrNotLast)
	}
	*n++
	return nil
}

// Remove checks that i is the last index of a kind counted by n and uncounts it.
func (b *Bounds) Remove(n *uint32, i uint32) error {
	if i >= *n {
		return fmt.Errorf("remove %d of %d: %w", i, *n, ErrIndexOutOfRange)
	}
	if i != *n-1 {
		return fmt.Errorf("remove %d of %d: %w", i, *n, ErrNotLast)
	}
	*n--
	return nil
}

func within(kind string, i, n uint32) error {
	if i >= n {
		return fmt.Errorf("%s %d of %d: %w", kind, i, n, ErrIndexOutOfRange)
	}
	return nil
}

func optional(check func(uint32) error, o OptionalIndex) error {
	if !o.Valid {
		return nil
	}
	return check(o.Index)
}
