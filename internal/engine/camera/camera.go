// Package camera provides the orbit camera used by the mesh viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meshload/pkg/math"
	"github.com/Faultbox/meshload/pkg/mesh"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	FovY float32 // radians
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        5.0,
		RotationX:       0.4,
		MinDistance:     0.01,
		MaxDistance:     10000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            gomath.Pi / 4,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosX := float32(gomath.Cos(float64(c.RotationX)))
	offset := math.Vec3{
		X: c.Distance * cosX * float32(gomath.Sin(float64(c.RotationY))),
		Y: c.Distance * float32(gomath.Sin(float64(c.RotationX))),
		Z: c.Distance * cosX * float32(gomath.Cos(float64(c.RotationY))),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns a perspective projection whose clip planes
// scale with the orbit distance.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	near := c.Distance * 0.01
	far := c.Distance * 100
	return math.Perspective(c.FovY, aspect, near, far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off far enough for the
// bounding sphere to fill the vertical field of view.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds) {
	c.Center = b.Center()

	radius := b.Radius()
	if radius <= 0 {
		radius = 1
	}
	c.Distance = radius / float32(gomath.Sin(float64(c.FovY)/2))
	c.MinDistance = radius * 0.05
	c.MaxDistance = max(c.Distance*20, c.MaxDistance)

	c.RotationX = 0.4
	c.RotationY = 0.6
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
