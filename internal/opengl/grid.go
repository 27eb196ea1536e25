package opengl

import (
	"sculpt-editor/core"
	"sculpt-editor/math"
)

// GridLines are the line segments of a flat grid on the XZ plane, grouped by
// colour so each group is one draw call.
type GridLines struct {
	Lines  []math.Vec3 // pairs of endpoints
	XAxis  [2]math.Vec3
	ZAxis  [2]math.Vec3
	Colors GridColors
}

type GridColors struct {
	Lines core.Color
	XAxis core.Color
	ZAxis core.Color
}

var defaultGridColors = GridColors{
	Lines: core.Color{R: 0.35, G: 0.35, B: 0.35, A: 1},
	XAxis: core.Color{R: 0.8, G: 0.15, B: 0.15, A: 1},
	ZAxis: core.Color{R: 0.15, G: 0.35, B: 0.9, A: 1},
}

// Grid builds a grid from -size/2 to +size/2 at height y. The centre lines
// are returned separately as the X and Z axes.
func Grid(size float32, divisions int, y float32) GridLines {
	if divisions < 1 {
		divisions = 1
	}
	// an odd count has no line through the origin
	if divisions%2 == 1 {
		divisions++
	}
	half := size / 2
	step := size / float32(divisions)

	g := GridLines{Colors: defaultGridColors}
	for i := 0; i <= divisions; i++ {
		d := -half + float32(i)*step
		alongZ := [2]math.Vec3{math.NewVec3(d, y, -half), math.NewVec3(d, y, half)}
		alongX := [2]math.Vec3{math.NewVec3(-half, y, d), math.NewVec3(half, y, d)}
		if i == divisions/2 {
			g.ZAxis = alongZ
			g.XAxis = alongX
			continue
		}
		g.Lines = append(g.Lines, alongZ[0], alongZ[1], alongX[0], alongX[1])
	}
	return g
}
