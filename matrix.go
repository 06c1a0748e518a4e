package tess

import "math"

// Matrix represents a 2D affine transformation:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// Points transform as x' = A*x + C*y + E, y' = B*x + D*y + F.
type Matrix struct {
	A, B, C, D, E, F float32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation matrix.
func Translate(dx, dy float32) Matrix {
	return Matrix{A: 1, D: 1, E: dx, F: dy}
}

// Scale returns a scaling matrix.
func Scale(sx, sy float32) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation matrix for the given angle in radians.
// Positive angles rotate clockwise in a y-down coordinate system.
func Rotate(angle float32) Matrix {
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns the matrix product m × n, applying n first and m second.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translated returns m composed with a translation applied before m.
func (m Matrix) Translated(dx, dy float32) Matrix {
	return m.Multiply(Translate(dx, dy))
}

// Scaled returns m composed with a scale applied before m.
func (m Matrix) Scaled(sx, sy float32) Matrix {
	return m.Multiply(Scale(sx, sy))
}

// Rotated returns m composed with a rotation applied before m.
func (m Matrix) Rotated(angle float32) Matrix {
	return m.Multiply(Rotate(angle))
}

// TransformPoint applies the full affine transform to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies only the linear part of the transform,
// ignoring translation. Use for directions and normals.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Invert returns the inverse of m and true, or the identity and false
// when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Matrix{A: 1, D: 1}
}
