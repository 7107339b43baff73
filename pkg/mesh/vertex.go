// Package mesh defines the render-ready vertex and index buffers produced by
// the format decoders.
package mesh

import "github.com/Faultbox/meshload/pkg/math"

// Rgba8 is an 8-bit per channel color.
type Rgba8 struct {
	R, G, B, A uint8
}

// White is opaque white.
var White = Rgba8{255, 255, 255, 255}

// DefaultNormal is assigned to vertices whose source supplies no normal.
var DefaultNormal = math.Vec3{X: 1, Y: 0, Z: 0}

// Vertex is a single output vertex with position, normal, color and UV.
// Field order matches the GPU attribute layout.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    Rgba8
	UV       math.Vec2
}

// NewVertex returns a vertex at pos with the default normal, white color
// and zero UV.
func NewVertex(pos math.Vec3) Vertex {
	return Vertex{
		Position: pos,
		Normal:   DefaultNormal,
		Color:    White,
	}
}
