package sculpt

import (
	"cmp"
	"slices"

	"sculpt-editor/action"
	"sculpt-editor/math"
	"sculpt-editor/partial"
	"sculpt-editor/topology"
	"sculpt-editor/winged"
)

// maxSplits bounds the edges one application may split.
const maxSplits = 1 << 10

// Action is one application of a brush: optional edge splits under the
// brush, a move for every vertex under it, then normal updates of the
// affected region.
type Action struct {
	action.Composite
	mesh *winged.Mesh
}

func NewAction(m *winged.Mesh) *Action {
	return &Action{mesh: m}
}

// Run applies b to the mesh and records every write. A brush without a
// position leaves the action empty.
func (a *Action) Run(b *Brush) {
	if !b.HasPosition() {
		return
	}
	a.subdivide(b)
	vertices := a.mesh.VerticesInSphere(b.Position(), b.Radius())
	if len(vertices) == 0 {
		return
	}

	switch b.Kind() {
	case Smooth:
		a.smooth(b, vertices)
	case Drag:
		a.displace(b, vertices, func(*winged.Vertex) math.Vec3 {
			return b.Direction().Mul(b.IntensityFactor() * b.Radius())
		})
	default:
		a.displace(b, vertices, func(v *winged.Vertex) math.Vec3 {
			n := b.Normal()
			if n == math.Vec3Zero {
				n = v.SavedNormal(a.mesh)
			}
			return n.Mul(b.strength())
		})
	}
	a.writeNormals(vertices)
}

// subdivide splits the edges touching the brush that are longer than its
// threshold, longest first, until none is left or maxSplits is reached.
func (a *Action) subdivide(b *Brush) {
	threshold := b.SubdivThreshold()
	if !b.Subdivide() || threshold <= 0 {
		return
	}
	t2 := threshold * threshold
	r2 := b.Radius() * b.Radius()
	long := func(e *winged.Edge) bool {
		p1, p2 := e.Vertex1().Position(a.mesh), e.Vertex2().Position(a.mesh)
		if p1.DistanceSqr(b.Position()) > r2 && p2.DistanceSqr(b.Position()) > r2 {
			return false
		}
		return p1.DistanceSqr(p2) > t2
	}

	var queue []*winged.Edge
	for _, e := range a.mesh.Edges() {
		if long(e) {
			queue = append(queue, e)
		}
	}
	for splits := 0; len(queue) > 0 && splits < maxSplits; {
		slices.SortFunc(queue, func(x, y *winged.Edge) int {
			return cmp.Compare(a.lengthSqr(x), a.lengthSqr(y))
		})
		e := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !long(e) {
			continue
		}

		split := new(topology.SplitEdge)
		if err := split.Run(a.mesh, e); err != nil {
			if !split.IsEmpty() {
				_ = split.Undo(a.mesh)
			}
			continue
		}
		a.Append(split)
		splits++
		for _, n := range split.Vertex().AdjacentEdges() {
			if long(n) {
				queue = append(queue, n)
			}
		}
	}
}

func (a *Action) lengthSqr(e *winged.Edge) float32 {
	return e.Vertex1().Position(a.mesh).DistanceSqr(e.Vertex2().Position(a.mesh))
}

func (a *Action) displace(b *Brush, vertices []*winged.Vertex, delta func(*winged.Vertex) math.Vec3) {
	for _, v := range vertices {
		p := v.Position(a.mesh)
		w := b.Falloff(p.Distance(b.Position()))
		if w == 0 {
			continue
		}
		action.Add(a, new(partial.ModifyVertex)).Move(a.mesh, v, p.Add(delta(v).Mul(w)))
	}
}

// smooth moves each vertex towards the centroid of its neighbors. All
// targets are computed from the unmodified mesh before anything is written.
func (a *Action) smooth(b *Brush, vertices []*winged.Vertex) {
	from := make([]math.Vec3, len(vertices))
	to := make([]math.Vec3, len(vertices))
	for i, v := range vertices {
		p := v.Position(a.mesh)
		from[i], to[i] = p, p

		neighbors := v.AdjacentVertices()
		if len(neighbors) == 0 {
			continue
		}
		centroid := math.Vec3Zero
		for _, n := range neighbors {
			centroid = centroid.Add(n.Position(a.mesh))
		}
		centroid = centroid.Div(float32(len(neighbors)))
		to[i] = p.Lerp(centroid, b.Falloff(p.Distance(b.Position())))
	}

	for i, v := range vertices {
		if to[i] == from[i] {
			continue
		}
		v.WritePosition(a.mesh, to[i])
		action.Add(a, new(partial.ModifyVertex)).Moved(a.mesh, v, from[i])
	}
}

// writeNormals refreshes the normals of the given vertices and of their
// neighbors, whose adjacent faces changed as well.
func (a *Action) writeNormals(vertices []*winged.Vertex) {
	if a.IsEmpty() {
		return
	}
	seen := make(map[uint32]*winged.Vertex)
	for _, v := range vertices {
		seen[v.Index()] = v
		for _, n := range v.AdjacentVertices() {
			seen[n.Index()] = n
		}
	}
	indices := make([]uint32, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	slices.Sort(indices)

	for _, i := range indices {
		action.Add(a, new(partial.ModifyVertex)).WriteInterpolatedNormal(a.mesh, seen[i])
	}
}
