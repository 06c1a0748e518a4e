package tess

import "math"

// Rect is an axis-aligned rectangle described by its origin (top-left
// corner) and size.
type Rect struct {
	X, Y, W, H float32
}

// XYWH constructs a Rect from origin and size.
func XYWH(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectEverything is a rectangle that contains all finite geometry.
// Used as the default clip rect.
var RectEverything = Rect{
	X: float32(math.Inf(-1)),
	Y: float32(math.Inf(-1)),
	W: float32(math.Inf(1)),
	H: float32(math.Inf(1)),
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.X + r.W, r.Y + r.H}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the intersection of r and s.
// The result is empty if the rectangles do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	mn := r.Min().Max(s.Min())
	mx := r.Max().Min(s.Max())
	return Rect{X: mn.X, Y: mn.Y, W: mx.X - mn.X, H: mx.Y - mn.Y}
}

// Contains reports whether p lies inside r (inclusive of the top-left edge,
// exclusive of the bottom-right edge).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Corners holds one radius per rectangle corner, used for rounded
// rectangles.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformCorners returns Corners with the same radius everywhere.
func UniformCorners(r float32) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero reports whether all four radii are zero.
func (c Corners) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomRight == 0 && c.BottomLeft == 0
}

// PathBounds returns the axis-aligned bounding box of pts.
// Returns the zero Rect for an empty slice.
func PathBounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	mn, mx := pts[0], pts[0]
	for _, p := range pts[1:] {
		mn = mn.Min(p)
		mx = mx.Max(p)
	}
	return Rect{X: mn.X, Y: mn.Y, W: mx.X - mn.X, H: mx.Y - mn.Y}
}
