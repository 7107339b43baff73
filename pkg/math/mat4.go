package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Columns 0..2 are the I, J and K basis vectors, column 3 is the translation.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromBasis builds an affine matrix from three basis vectors and a translation.
func FromBasis(i, j, k, t Vec3) Mat4 {
	return Mat4{
		i.X, i.Y, i.Z, 0,
		j.X, j.Y, j.Z, 0,
		k.X, k.Y, k.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)/2.0))
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return FromBasis(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{x, y, z})
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return FromBasis(Vec3{x, 0, 0}, Vec3{0, y, 0}, Vec3{0, 0, z}, Vec3{})
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	c, s := sincos(angle)
	return FromBasis(Vec3{1, 0, 0}, Vec3{0, c, s}, Vec3{0, -s, c}, Vec3{})
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	c, s := sincos(angle)
	return FromBasis(Vec3{c, 0, -s}, Vec3{0, 1, 0}, Vec3{s, 0, c}, Vec3{})
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	c, s := sincos(angle)
	return FromBasis(Vec3{c, s, 0}, Vec3{-s, c, 0}, Vec3{0, 0, 1}, Vec3{})
}

func sincos(angle float32) (c, s float32) {
	sn, cs := math.Sincos(float64(angle))
	return float32(cs), float32(sn)
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Basis returns the I, J and K basis vectors (the first three columns).
func (m Mat4) Basis() (i, j, k Vec3) {
	i = Vec3{m[0], m[1], m[2]}
	j = Vec3{m[4], m[5], m[6]}
	k = Vec3{m[8], m[9], m[10]}
	return i, j, k
}

// Orthonormalized returns the linear part of m with each basis vector
// normalized independently and the translation dropped.
//
// This is only a correct normal matrix for rotations and uniform scale.
// Under non-uniform scale the result is not the inverse-transpose and
// transformed normals are no longer perpendicular to their surfaces.
func (m Mat4) Orthonormalized() Mat4 {
	i, j, k := m.Basis()
	return FromBasis(i.Normalize(), j.Normalize(), k.Normalize(), Vec3{})
}

// TransformVec3 transforms a point by the affine part of m (w is taken as 1
// and the projective row is ignored).
func (m Mat4) TransformVec3(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
