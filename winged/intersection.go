package winged

import (
	stdmath "math"

	"sculpt-editor/math"
)

// Intersection is the closest hit of a ray with a mesh.
type Intersection struct {
	Position math.Vec3
	Normal   math.Vec3
	Distance float32
	Face     *Face
}

// Intersect tests the ray against every face and returns the closest hit.
func (m *Mesh) Intersect(ray math.Ray) (Intersection, bool) {
	closest := Intersection{Distance: float32(stdmath.MaxFloat32)}
	hit := false

	for _, f := range m.faces {
		v0, v1, v2 := f.Triangle(m)
		t, ok := mollerTrumbore(ray, v0, v1, v2)
		if ok && t < closest.Distance {
			hit = true
			closest.Distance = t
			closest.Position = ray.PointAt(t)
			closest.Normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
			closest.Face = f
		}
	}
	return closest, hit
}

// mollerTrumbore implements the Möller–Trumbore ray-triangle intersection.
func mollerTrumbore(ray math.Ray, v0, v1, v2 math.Vec3) (float32, bool) {
	const epsilon = 0.0000001

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	return t, t > epsilon
}
