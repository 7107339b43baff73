package mesh

import (
	gomath "math"

	"github.com/Faultbox/meshload/pkg/math"
)

// Buffers holds a flat vertex list and a triangle index list (stride 3).
type Buffers struct {
	Vertices []Vertex
	Indices  []uint32
}

// Append copies other onto the end of b, rebasing its indices so they keep
// pointing at the same vertices.
func (b *Buffers) Append(other *Buffers) {
	base := uint32(len(b.Vertices))
	b.Vertices = append(b.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		b.Indices = append(b.Indices, base+idx)
	}
}

// TriangleCount returns the number of complete triangles in the index list.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// An empty buffer yields a zero Bounds.
func (b *Buffers) Bounds() Bounds {
	if len(b.Vertices) == 0 {
		return Bounds{}
	}

	bounds := Bounds{
		Min: math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32},
		Max: math.Vec3{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32, Z: -gomath.MaxFloat32},
	}
	for i := range b.Vertices {
		p := b.Vertices[i].Position
		bounds.Min = bounds.Min.Min(p)
		bounds.Max = bounds.Max.Max(p)
	}
	return bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns the radius of the sphere enclosing the box.
func (b Bounds) Radius() float32 {
	return b.Size().Length() * 0.5
}
