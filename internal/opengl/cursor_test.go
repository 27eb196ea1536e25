package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sculpt-editor/math"
)

func TestCircleLiesOnPlane(t *testing.T) {
	center := math.NewVec3(1, 2, 3)
	for _, normal := range []math.Vec3{math.Vec3Up, math.NewVec3(1, 1, 0), math.Vec3Zero} {
		points := Circle(center, normal, 0.5, 16)
		require.Len(t, points, 16)

		n := normal.Normalize()
		if n == math.Vec3Zero {
			n = math.Vec3Up
		}
		for _, p := range points {
			assert.InDelta(t, 0.5, p.Distance(center), 1e-5)
			assert.InDelta(t, 0, p.Sub(center).Dot(n), 1e-5)
		}
	}
}
