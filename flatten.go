package tess

import "math"

// Flattening constants. Curves are sampled uniformly; the segment count
// grows with how far the control polygon strays from the chord.
const (
	flattenMinSegments = 4
	flattenMaxSegments = 64
	flattenTolerance   = 7.0 // lower = more segments
)

// FlattenedContour describes one flattened subpath as a half-open range
// [Start, End) into the shared output point buffer.
type FlattenedContour struct {
	Contour    Contour
	Start, End int
}

// Points returns the contour's slice of the shared buffer.
func (fc FlattenedContour) Points(buf []Point) []Point {
	return buf[fc.Start:fc.End]
}

// PathFlattener converts path events into polyline contours, appending
// all points to one shared buffer so a frame's geometry stays contiguous.
//
// The zero value flattens adaptively with the default tolerance.
type PathFlattener struct {
	// FixedSegments forces every curve to the given segment count.
	// Zero selects the adaptive heuristic.
	FixedSegments int

	// Tolerance overrides the adaptive flattening tolerance.
	// Zero selects the default.
	Tolerance float32
}

// Flatten appends the flattened contours of path to buf and their ranges
// to contours, returning the grown slices. Both may be nil or recycled
// between calls to avoid allocation.
func (f PathFlattener) Flatten(path Path, buf []Point, contours []FlattenedContour) ([]Point, []FlattenedContour) {
	return f.FlattenRaw(path.points, path.verbs, buf, contours)
}

// FlattenRaw is Flatten over raw point/verb streams.
func (f PathFlattener) FlattenRaw(points []Point, verbs []PathVerb, buf []Point, contours []FlattenedContour) ([]Point, []FlattenedContour) {
	tol := f.Tolerance
	if tol <= 0 {
		tol = flattenTolerance
	}

	var first, last Point
	i := 0
	runStart := len(buf)
	for _, v := range verbs {
		switch v {
		case VerbBegin:
			runStart = len(buf)
			first = points[i]
			last = first
			i++
			buf = pushFlattened(buf, runStart, first)
		case VerbLineTo:
			to := points[i]
			i++
			buf = pushFlattened(buf, runStart, to)
			last = to
		case VerbQuadraticTo:
			ctrl, to := points[i], points[i+1]
			i += 2
			n := f.FixedSegments
			if n <= 0 {
				n = quadraticSegments(last, ctrl, to, tol)
			}
			step := 1 / float32(n)
			for k := 1; k <= n; k++ {
				buf = pushFlattened(buf, runStart, sampleQuadratic(last, ctrl, to, step*float32(k)))
			}
			last = to
		case VerbCubicTo:
			c1, c2, to := points[i], points[i+1], points[i+2]
			i += 3
			n := f.FixedSegments
			if n <= 0 {
				n = cubicSegments(last, c1, c2, to, tol)
			}
			step := 1 / float32(n)
			for k := 1; k <= n; k++ {
				buf = pushFlattened(buf, runStart, sampleCubic(last, c1, c2, to, step*float32(k)))
			}
			last = to
		case VerbEnd, VerbClose:
			if v == VerbClose {
				i++ // duplicated first point
				buf = pushFlattened(buf, runStart, first)
			}
			contours = append(contours, FlattenedContour{
				Contour: Contour(i),
				Start:   runStart,
				End:     len(buf),
			})
			runStart = len(buf)
		}
	}
	return buf, contours
}

// pushFlattened appends p unless it coincides with the previous point of
// the current run within pointEpsilon per axis.
func pushFlattened(buf []Point, runStart int, p Point) []Point {
	if len(buf) > runStart && buf[len(buf)-1].approxEq(p) {
		return buf
	}
	return append(buf, p)
}

// quadraticSegments picks a segment count from how far the control
// polygon strays from the chord.
func quadraticSegments(from, ctrl, to Point, tol float32) int {
	chord := to.Sub(from).Length()
	if chord == 0 {
		return flattenMinSegments
	}
	controlPolygon := ctrl.Sub(from).Length() + to.Sub(ctrl).Length()
	flatness := controlPolygon / chord
	return clampSegments(flatness * chord / tol)
}

func cubicSegments(from, ctrl1, ctrl2, to Point, tol float32) int {
	chord := to.Sub(from).Length()
	if chord == 0 {
		return flattenMinSegments
	}
	controlPolygon := ctrl1.Sub(from).Length() + ctrl2.Sub(ctrl1).Length() + to.Sub(ctrl2).Length()
	flatness := controlPolygon / chord
	return clampSegments(flatness * chord / tol)
}

func clampSegments(v float32) int {
	n := int(math.Ceil(float64(v)))
	if n < flattenMinSegments {
		return flattenMinSegments
	}
	if n > flattenMaxSegments {
		return flattenMaxSegments
	}
	return n
}

// sampleQuadratic evaluates the quadratic Bézier at t.
func sampleQuadratic(from, ctrl, to Point, t float32) Point {
	u := 1 - t
	return Point{
		X: u*u*from.X + 2*u*t*ctrl.X + t*t*to.X,
		Y: u*u*from.Y + 2*u*t*ctrl.Y + t*t*to.Y,
	}
}

// sampleCubic evaluates the cubic Bézier at t.
func sampleCubic(from, ctrl1, ctrl2, to Point, t float32) Point {
	u := 1 - t
	uu := u * u
	tt := t * t
	return Point{
		X: uu*u*from.X + 3*uu*t*ctrl1.X + 3*u*tt*ctrl2.X + tt*t*to.X,
		Y: uu*u*from.Y + 3*uu*t*ctrl1.Y + 3*u*tt*ctrl2.Y + tt*t*to.Y,
	}
}
