package math

// Ray is a half-line; Direction is expected to be normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

func (r Ray) PointAt(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is the set of points p with Normal·(p - Point) = 0.
type Plane struct {
	Point  Vec3
	Normal Vec3
}

func NewPlane(point, normal Vec3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// Intersect returns the ray parameter of the hit. Rays parallel to the plane
// or pointing away from it miss.
func (p Plane) Intersect(r Ray) (float32, bool) {
	const epsilon = 1e-6

	denom := p.Normal.Dot(r.Direction)
	if denom > -epsilon && denom < epsilon {
		return 0, false
	}
	t := p.Normal.Dot(p.Point.Sub(r.Origin)) / denom
	return t, t >= 0
}
