package editor

import (
	"sculpt-editor/action"
	"sculpt-editor/math"
	"sculpt-editor/topology"
	"sculpt-editor/winged"
)

// pickRay converts the cursor position to a world-space ray
func (e *Editor) pickRay() math.Ray {
	width, height := e.source.Size()
	return e.Camera.Ray(float32(e.Input.MouseX), float32(e.Input.MouseY), float32(width), float32(height))
}

// FlipEdge flips the edge of the face under ray that is closest to the hit
// point, as its own history unit.
func (e *Editor) FlipEdge(ray math.Ray) {
	hit, ok := e.Mesh.Intersect(ray)
	if !ok {
		e.StatusText = "No edge under cursor"
		return
	}
	edge := nearestEdge(e.Mesh, hit.Face, hit.Position)

	e.Tool.Flush()
	u := action.NewUnit()
	if err := action.Add(u, new(topology.FlipEdge)).Run(e.Mesh, edge); err != nil {
		e.logger.Debug("edge not flipped", "edge", edge.Index(), "error", err)
		e.StatusText = "Edge cannot be flipped"
		return
	}
	e.History.AddUnit(u)
	e.StatusText = "Edge flipped"
}

// nearestEdge returns the edge of f whose segment is closest to p.
func nearestEdge(m *winged.Mesh, f *winged.Face, p math.Vec3) *winged.Edge {
	var best *winged.Edge
	bestDist := float32(-1)
	for _, edge := range f.Edges() {
		a, b := edge.Vertex1().Position(m), edge.Vertex2().Position(m)
		d := segmentDistanceSqr(p, a, b)
		if best == nil || d < bestDist {
			best, bestDist = edge, d
		}
	}
	return best
}

func segmentDistanceSqr(p, a, b math.Vec3) float32 {
	ab := b.Sub(a)
	t := float32(0)
	if l := ab.LengthSqr(); l > 0 {
		t = min(max(p.Sub(a).Dot(ab)/l, 0), 1)
	}
	return p.DistanceSqr(a.Add(ab.Mul(t)))
}
