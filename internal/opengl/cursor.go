package opengl

import (
	stdmath "math"

	"sculpt-editor/math"
)

const cursorSegments = 48

// Circle returns n points on the circle of the given radius around center,
// in the plane orthogonal to normal.
func Circle(center, normal math.Vec3, radius float32, n int) []math.Vec3 {
	normal = normal.Normalize()
	if normal == math.Vec3Zero {
		normal = math.Vec3Up
	}
	// any axis not parallel to normal spans the plane with it
	axis := math.Vec3Up
	if abs(normal.Dot(axis)) > 0.9 {
		axis = math.Vec3Right
	}
	u := normal.Cross(axis).Normalize()
	v := normal.Cross(u)

	points := make([]math.Vec3, n)
	for i := range points {
		angle := 2 * stdmath.Pi * float64(i) / float64(n)
		s, c := stdmath.Sincos(angle)
		points[i] = center.Add(u.Mul(radius * float32(c))).Add(v.Mul(radius * float32(s)))
	}
	return points
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
