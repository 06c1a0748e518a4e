package tess

import (
	"iter"
	"math"
	"slices"
	"sync/atomic"
)

// Contour identifies one finished subpath inside a Path. Its value is the
// cumulative point count at the moment the subpath ended, so it is unique
// within a path and usable as a map key. The zero value is invalid.
type Contour int

// ContourInvalid is the zero, never-assigned contour handle.
const ContourInvalid Contour = 0

// IsValid reports whether c refers to a finished subpath.
func (c Contour) IsValid() bool { return c != ContourInvalid }

// pathChecks enables the builder's subpath state machine validation.
// Contract violations panic when enabled; when disabled the builder
// accepts malformed call sequences and produces undefined verb streams.
var pathChecks atomic.Bool

// SetPathChecks toggles builder call-sequence validation for the package.
// Off by default; tests and debug builds should enable it.
func SetPathChecks(enabled bool) { pathChecks.Store(enabled) }

// PathChecks reports whether builder validation is enabled.
func PathChecks() bool { return pathChecks.Load() }

// PathBuilder accumulates points and verbs into a Path.
// The zero value is ready to use.
//
// Call sequence: each subpath is Begin, then any number of LineTo,
// QuadraticTo and CubicTo, then End or Close. With SetPathChecks(true)
// violations panic immediately.
type PathBuilder struct {
	points    []Point
	verbs     []PathVerb
	first     Point
	inSubpath bool
}

// bezierCircleFactor is the control-point distance factor approximating a
// quarter circle with one cubic Bézier.
// https://spencermortensen.com/articles/bezier-circle/
const bezierCircleFactor = 0.55191505

// Begin starts a new subpath at p.
func (b *PathBuilder) Begin(p Point) {
	if pathChecks.Load() && b.inSubpath {
		panic("tess: PathBuilder.Begin inside an open subpath; call End or Close first")
	}
	checkFinite("Begin", p)
	b.inSubpath = true
	b.first = p
	b.points = append(b.points, p)
	b.verbs = append(b.verbs, VerbBegin)
}

// LineTo adds a straight segment to p.
func (b *PathBuilder) LineTo(p Point) {
	b.checkInSubpath("LineTo")
	checkFinite("LineTo", p)
	b.points = append(b.points, p)
	b.verbs = append(b.verbs, VerbLineTo)
}

// QuadraticTo adds a quadratic Bézier segment with control point ctrl
// ending at p.
func (b *PathBuilder) QuadraticTo(ctrl, p Point) {
	b.checkInSubpath("QuadraticTo")
	checkFinite("QuadraticTo", ctrl, p)
	b.points = append(b.points, ctrl, p)
	b.verbs = append(b.verbs, VerbQuadraticTo)
}

// CubicTo adds a cubic Bézier segment with control points ctrl1, ctrl2
// ending at p.
func (b *PathBuilder) CubicTo(ctrl1, ctrl2, p Point) {
	b.checkInSubpath("CubicTo")
	checkFinite("CubicTo", ctrl1, ctrl2, p)
	b.points = append(b.points, ctrl1, ctrl2, p)
	b.verbs = append(b.verbs, VerbCubicTo)
}

// End finishes the current subpath and returns its handle.
// When close is true the first point is re-appended and the subpath is
// marked closed.
func (b *PathBuilder) End(close bool) Contour {
	b.checkInSubpath("End")
	b.inSubpath = false
	if close {
		b.points = append(b.points, b.first)
		b.verbs = append(b.verbs, VerbClose)
	} else {
		b.verbs = append(b.verbs, VerbEnd)
	}
	return Contour(len(b.points))
}

// Close finishes the current subpath, closing it back to its first point.
func (b *PathBuilder) Close() Contour {
	return b.End(true)
}

func (b *PathBuilder) checkInSubpath(op string) {
	if pathChecks.Load() && !b.inSubpath {
		panic("tess: PathBuilder." + op + " outside a subpath; call Begin first")
	}
}

func checkFinite(op string, pts ...Point) {
	if !pathChecks.Load() {
		return
	}
	for _, p := range pts {
		x, y := float64(p.X), float64(p.Y)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			panic("tess: PathBuilder." + op + " with non-finite coordinates")
		}
	}
}

// Extend replays a stream of path events into the builder.
func (b *PathBuilder) Extend(events iter.Seq[PathEvent]) {
	for ev := range events {
		switch e := ev.(type) {
		case EventBegin:
			b.Begin(e.At)
		case EventLine:
			b.LineTo(e.To)
		case EventQuadratic:
			b.QuadraticTo(e.Ctrl, e.To)
		case EventCubic:
			b.CubicTo(e.Ctrl1, e.Ctrl2, e.To)
		case EventEnd:
			b.End(e.Close)
		}
	}
}

// AddPoint adds a degenerate single-point subpath.
func (b *PathBuilder) AddPoint(p Point) Contour {
	b.Begin(p)
	return b.End(false)
}

// Triangle adds a closed triangular subpath.
func (b *PathBuilder) Triangle(p1, p2, p3 Point) Contour {
	b.Begin(p1)
	b.LineTo(p2)
	b.LineTo(p3)
	return b.End(true)
}

// Polygon adds a closed subpath through pts.
// Returns ContourInvalid for an empty slice.
func (b *PathBuilder) Polygon(pts []Point) Contour {
	if len(pts) == 0 {
		return ContourInvalid
	}
	b.Begin(pts[0])
	for _, p := range pts[1:] {
		b.LineTo(p)
	}
	return b.End(true)
}

// Rect adds a closed rectangular subpath with clockwise winding.
func (b *PathBuilder) Rect(r Rect) Contour {
	mn, mx := r.Min(), r.Max()
	b.Begin(mn)
	b.LineTo(Point{mx.X, mn.Y})
	b.LineTo(mx)
	b.LineTo(Point{mn.X, mx.Y})
	return b.End(true)
}

// Circle adds a closed circular subpath approximated by four cubic Bézier
// segments, starting at the leftmost point with clockwise winding.
func (b *PathBuilder) Circle(center Point, radius float32) Contour {
	radius = abs32(radius)
	d := radius * bezierCircleFactor

	b.Begin(center.Add(Point{-radius, 0}))

	b.CubicTo(
		center.Add(Point{-radius, -d}),
		center.Add(Point{-d, -radius}),
		center.Add(Point{0, -radius}),
	)
	b.CubicTo(
		center.Add(Point{d, -radius}),
		center.Add(Point{radius, -d}),
		center.Add(Point{radius, 0}),
	)
	b.CubicTo(
		center.Add(Point{radius, d}),
		center.Add(Point{d, radius}),
		center.Add(Point{0, radius}),
	)
	b.CubicTo(
		center.Add(Point{-d, radius}),
		center.Add(Point{-radius, d}),
		center.Add(Point{-radius, 0}),
	)
	return b.Close()
}

// RoundRect adds a closed rounded-rectangle subpath. Radii are clamped
// per corner so that adjacent radii never exceed the shared side, then
// each corner with a positive radius is approximated by one cubic Bézier.
func (b *PathBuilder) RoundRect(r Rect, corners Corners) Contour {
	w, h := r.W, r.H
	mn, mx := r.Min(), r.Max()
	minWH := min(w, h)

	tl := min(abs32(corners.TopLeft), minWH)
	tr := min(abs32(corners.TopRight), minWH)
	bl := min(abs32(corners.BottomLeft), minWH)
	br := min(abs32(corners.BottomRight), minWH)

	// Shrink pairs of radii that do not fit on their shared side.
	if tl+tr > w {
		x := (tl + tr - w) * 0.5
		tl -= x
		tr -= x
	}
	if bl+br > w {
		x := (bl + br - w) * 0.5
		bl -= x
		br -= x
	}
	if tr+br > h {
		x := (tr + br - h) * 0.5
		tr -= x
		br -= x
	}
	if tl+bl > h {
		x := (tl + bl - h) * 0.5
		tl -= x
		bl -= x
	}

	tlD := tl * bezierCircleFactor
	trD := tr * bezierCircleFactor
	brD := br * bezierCircleFactor
	blD := bl * bezierCircleFactor

	b.Begin(Point{mn.X, mn.Y + tl})
	if tl > 0 {
		b.CubicTo(
			Point{mn.X, mn.Y + tl - tlD},
			Point{mn.X + tl - tlD, mn.Y},
			Point{mn.X + tl, mn.Y},
		)
	}
	b.LineTo(Point{mx.X - tr, mn.Y})
	if tr > 0 {
		b.CubicTo(
			Point{mx.X - tr + trD, mn.Y},
			Point{mx.X, mn.Y + tr - trD},
			Point{mx.X, mn.Y + tr},
		)
	}
	b.LineTo(Point{mx.X, mx.Y - br})
	if br > 0 {
		b.CubicTo(
			Point{mx.X, mx.Y - br + brD},
			Point{mx.X - br + brD, mx.Y},
			Point{mx.X - br, mx.Y},
		)
	}
	b.LineTo(Point{mn.X + bl, mx.Y})
	if bl > 0 {
		b.CubicTo(
			Point{mn.X + bl - blD, mx.Y},
			Point{mn.X, mx.Y - bl + blD},
			Point{mn.X, mx.Y - bl},
		)
	}
	return b.End(true)
}

// Path returns the built path. The returned Path shares the builder's
// backing storage; do not reuse the builder while the Path is in use
// unless the builder is Reset first.
func (b *PathBuilder) Path() Path {
	if pathChecks.Load() && b.inSubpath {
		panic("tess: PathBuilder.Path with an open subpath; call End or Close first")
	}
	return Path{points: b.points, verbs: b.verbs}
}

// Reset clears the builder for reuse, keeping allocated capacity.
func (b *PathBuilder) Reset() {
	b.points = b.points[:0]
	b.verbs = b.verbs[:0]
	b.inSubpath = false
}

// Reserve grows the builder's capacity ahead of a known-size path.
func (b *PathBuilder) Reserve(endpoints, ctrlPoints int) {
	b.points = slices.Grow(b.points, endpoints+ctrlPoints)
	b.verbs = slices.Grow(b.verbs, endpoints)
}
