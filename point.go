package tess

import "math"

// Point represents a 2D point or vector with float32 coordinates.
// float32 matches the GPU vertex stream, so flattened geometry moves into
// vertex buffers without conversion.
type Point struct {
	X, Y float32
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float32) Point {
	return Point{p.X * k, p.Y * k}
}

// Dot returns the dot product p · q.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross product).
// Positive when q is counter-clockwise from p in a y-down coordinate system.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector p.
func (p Point) Length() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Normalize returns the unit vector in the direction of p.
// Returns the zero vector if p has zero length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated 90 degrees counter-clockwise (in a y-down system
// this points to the left of the direction of travel).
func (p Point) Perp() Point {
	return Point{p.Y, -p.X}
}

// Lerp returns the linear interpolation between p and q at parameter t.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
	}
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{min(p.X, q.X), min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{max(p.X, q.X), max(p.Y, q.Y)}
}

// Round returns p with both coordinates rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{
		float32(math.Round(float64(p.X))),
		float32(math.Round(float64(p.Y))),
	}
}

// IsZero reports whether both coordinates are exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// pointEpsilon is the per-axis tolerance below which two points are
// considered coincident during flattening and tessellation.
const pointEpsilon = 1e-6

// approxEq reports whether p and q coincide within pointEpsilon per axis.
func (p Point) approxEq(q Point) bool {
	return abs32(p.X-q.X) <= pointEpsilon && abs32(p.Y-q.Y) <= pointEpsilon
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
