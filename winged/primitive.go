package winged

import (
	stdmath "math"

	"sculpt-editor/math"
)

// Icosphere builds a subdivided icosahedron projected onto a sphere.
func Icosphere(subdivisions int, radius float32) *Mesh {
	t := float32((1 + stdmath.Sqrt(5)) / 2)

	positions := []math.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	triangles := []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	for s := 0; s < subdivisions; s++ {
		midpoints := make(map[edgeKey]uint32)
		midpoint := func(a, b uint32) uint32 {
			key := keyOf(a, b)
			if i, ok := midpoints[key]; ok {
				return i
			}
			positions = append(positions, positions[a].Lerp(positions[b], 0.5))
			i := uint32(len(positions) - 1)
			midpoints[key] = i
			return i
		}

		next := make([]uint32, 0, len(triangles)*4)
		for i := 0; i < len(triangles); i += 3 {
			a, b, c := triangles[i], triangles[i+1], triangles[i+2]
			ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
			next = append(next,
				a, ab, ca,
				b, bc, ab,
				c, ca, bc,
				ab, bc, ca,
			)
		}
		triangles = next
	}

	for i := range positions {
		positions[i] = positions[i].Normalize().Mul(radius)
	}

	m, err := FromTriangles(positions, triangles)
	if err != nil {
		// the icosahedron table is a closed manifold
		panic(err)
	}
	return m
}
