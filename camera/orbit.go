// Package camera provides the orbiting viewport camera and the picking rays
// derived from it.
package camera

import (
	stdmath "math"

	"sculpt-editor/math"
)

const (
	maxPitch    = 1.5
	minDistance = 0.1
)

// Orbit is a camera orbiting around a target
type Orbit struct {
	Target   math.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	position math.Vec3
}

func NewOrbit(target math.Vec3, distance, fov, aspectRatio float32) *Orbit {
	c := &Orbit{
		Target:      target,
		Distance:    distance,
		Pitch:       0.3,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   0.01,
		FarPlane:    1000,
	}
	c.UpdatePosition()
	return c
}

func (c *Orbit) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

// UpdatePosition recomputes the eye from the spherical coordinates.
func (c *Orbit) UpdatePosition() {
	c.Pitch = min(max(c.Pitch, -maxPitch), maxPitch)
	c.Distance = max(c.Distance, minDistance)

	cosPitch := float32(stdmath.Cos(float64(c.Pitch)))
	sinPitch := float32(stdmath.Sin(float64(c.Pitch)))
	cosYaw := float32(stdmath.Cos(float64(c.Yaw)))
	sinYaw := float32(stdmath.Sin(float64(c.Yaw)))

	c.position = c.Target.Add(math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	})
}

func (c *Orbit) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.UpdatePosition()
}

func (c *Orbit) Zoom(delta float32) {
	c.Distance += delta
	c.UpdatePosition()
}

func (c *Orbit) Position() math.Vec3 { return c.position }

func (c *Orbit) Forward() math.Vec3 {
	return c.Target.Sub(c.position).Normalize()
}

func (c *Orbit) Right() math.Vec3 {
	return c.Forward().Cross(math.Vec3Up).Normalize()
}

func (c *Orbit) Up() math.Vec3 {
	return c.Right().Cross(c.Forward())
}

func (c *Orbit) View() math.Mat4 {
	return math.Mat4LookAt(c.position, c.Target, math.Vec3Up)
}

func (c *Orbit) Projection() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection maps world positions (as row vectors) to clip space.
func (c *Orbit) ViewProjection() math.Mat4 {
	return c.View().Mul(c.Projection())
}

// Ray returns the picking ray through a window position; y grows downwards.
func (c *Orbit) Ray(x, y, width, height float32) math.Ray {
	ndcX := (2*x)/width - 1
	ndcY := 1 - (2*y)/height
	tanHalf := float32(stdmath.Tan(float64(c.FOV) / 2))

	direction := c.Forward().
		Add(c.Right().Mul(ndcX * tanHalf * c.AspectRatio)).
		Add(c.Up().Mul(ndcY * tanHalf))
	return math.NewRay(c.position, direction)
}
