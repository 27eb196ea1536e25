package sculpt

import (
	"errors"
	"fmt"

	"sculpt-editor/math"
)

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("sculpt: unknown brush kind")

// Kind selects the deformation a brush applies.
type Kind string

const (
	Carve  Kind = "carve"
	Drag   Kind = "drag"
	Smooth Kind = "smooth"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Carve, Drag, Smooth:
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// DragLike reports whether strokes of this kind follow a movement plane
// instead of re-intersecting the mesh.
func (k Kind) DragLike() bool { return k == Drag }

// Invertible reports whether shift inverts the deformation.
func (k Kind) Invertible() bool { return k == Carve }

// Brush is the state of a sculpting brush between applications.
type Brush struct {
	kind            Kind
	radius          float32
	detailFactor    float32
	stepWidthFactor float32
	intensity       float32
	intensityFactor float32
	invert          bool
	subdivide       bool

	hasPosition bool
	position    math.Vec3
	normal      math.Vec3
	direction   math.Vec3
}

func NewBrush() *Brush {
	return &Brush{
		kind:            Carve,
		radius:          0.2,
		detailFactor:    0.75,
		stepWidthFactor: 0.3,
		intensity:       0.05,
		intensityFactor: 1,
	}
}

func (b *Brush) Kind() Kind               { return b.kind }
func (b *Brush) Radius() float32          { return b.radius }
func (b *Brush) DetailFactor() float32    { return b.detailFactor }
func (b *Brush) StepWidthFactor() float32 { return b.stepWidthFactor }
func (b *Brush) Intensity() float32       { return b.intensity }
func (b *Brush) IntensityFactor() float32 { return b.intensityFactor }
func (b *Brush) Invert() bool             { return b.invert }
func (b *Brush) Subdivide() bool          { return b.subdivide }

func (b *Brush) SetKind(k Kind)               { b.kind = k }
func (b *Brush) SetRadius(r float32)          { b.radius = r }
func (b *Brush) SetDetailFactor(f float32)    { b.detailFactor = f }
func (b *Brush) SetStepWidthFactor(f float32) { b.stepWidthFactor = f }
func (b *Brush) SetIntensity(i float32)       { b.intensity = i }
func (b *Brush) SetIntensityFactor(f float32) { b.intensityFactor = f }
func (b *Brush) SetInvert(invert bool)        { b.invert = invert }
func (b *Brush) SetSubdivide(on bool)         { b.subdivide = on }
func (b *Brush) SetNormal(n math.Vec3)        { b.normal = n.Normalize() }
func (b *Brush) SetDirection(d math.Vec3)     { b.direction = d }
func (b *Brush) Normal() math.Vec3            { return b.normal }
func (b *Brush) Direction() math.Vec3         { return b.direction }
func (b *Brush) Position() math.Vec3          { return b.position }
func (b *Brush) HasPosition() bool            { return b.hasPosition }

// StepWidth is the minimal distance between two applications of a stroke.
func (b *Brush) StepWidth() float32 {
	return b.stepWidthFactor * b.radius
}

// SubdivThreshold is the edge length above which edges under the brush are
// split when subdivision is on. It shrinks as the detail factor grows.
func (b *Brush) SubdivThreshold() float32 {
	return (1 - b.detailFactor) * b.radius
}

// UpdatePosition moves the brush to p if it has no position yet or p is at
// least one step width away. It reports whether the brush moved.
func (b *Brush) UpdatePosition(p math.Vec3) bool {
	if b.hasPosition && b.position.Distance(p) < b.StepWidth() {
		return false
	}
	b.SetPosition(p)
	return true
}

func (b *Brush) SetPosition(p math.Vec3) {
	b.position = p
	b.hasPosition = true
}

// ResetPosition ends the current stroke.
func (b *Brush) ResetPosition() {
	b.hasPosition = false
	b.intensityFactor = 1
}

// Falloff weights a vertex at distance d from the brush center: 1 at the
// center, 0 at the radius and beyond.
func (b *Brush) Falloff(d float32) float32 {
	if b.radius <= 0 || d >= b.radius {
		return 0
	}
	x := d / b.radius
	return 1 - x*x*(3-2*x)
}

// strength is the signed displacement at the brush center along the normal.
func (b *Brush) strength() float32 {
	s := b.intensity * b.intensityFactor * b.radius
	if b.invert {
		return -s
	}
	return s
}
