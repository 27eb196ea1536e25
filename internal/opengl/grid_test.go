package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sculpt-editor/math"
)

func TestGrid(t *testing.T) {
	g := Grid(4, 4, -1)

	// 5 lines per direction, the centre ones are the axes
	assert.Len(t, g.Lines, 2*2*4)
	assert.Equal(t, [2]math.Vec3{math.NewVec3(-2, -1, 0), math.NewVec3(2, -1, 0)}, g.XAxis)
	assert.Equal(t, [2]math.Vec3{math.NewVec3(0, -1, -2), math.NewVec3(0, -1, 2)}, g.ZAxis)
	for _, p := range g.Lines {
		assert.Equal(t, float32(-1), p.Y)
		assert.LessOrEqual(t, p.X, float32(2))
		assert.GreaterOrEqual(t, p.Z, float32(-2))
	}
}

func TestGridRoundsDivisionsUp(t *testing.T) {
	g := Grid(2, 3, 0)
	assert.Len(t, g.Lines, 2*2*4)
	assert.Equal(t, float32(0), g.ZAxis[0].X)

	g = Grid(2, 0, 0)
	assert.Len(t, g.Lines, 8)
	assert.Equal(t, math.NewVec3(-1, 0, 0), g.XAxis[0])
}
