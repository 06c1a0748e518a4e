package tess

import "iter"

// PathVerb identifies one path-building operation in a Path's verb stream.
// Each verb consumes a fixed number of points from the point stream:
// Begin, LineTo and Close consume one, QuadraticTo two, CubicTo three,
// End none. Close consumes the duplicated first point appended when the
// subpath was closed.
type PathVerb uint8

const (
	VerbBegin PathVerb = iota
	VerbLineTo
	VerbQuadraticTo
	VerbCubicTo
	VerbEnd
	VerbClose
)

// String returns the verb name for debugging.
func (v PathVerb) String() string {
	switch v {
	case VerbBegin:
		return "Begin"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadraticTo:
		return "QuadraticTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbEnd:
		return "End"
	case VerbClose:
		return "Close"
	}
	return "Unknown"
}

// PathEvent is one decoded path event. The concrete types are EventBegin,
// EventLine, EventQuadratic, EventCubic and EventEnd.
type PathEvent interface {
	pathEvent()
}

// EventBegin starts a new subpath at At.
type EventBegin struct {
	At Point
}

// EventLine is a straight segment.
type EventLine struct {
	From, To Point
}

// EventQuadratic is a quadratic Bézier segment.
type EventQuadratic struct {
	From, Ctrl, To Point
}

// EventCubic is a cubic Bézier segment.
type EventCubic struct {
	From, Ctrl1, Ctrl2, To Point
}

// EventEnd terminates the current subpath. Close reports whether the
// subpath was explicitly closed back to First.
type EventEnd struct {
	Last, First Point
	Close       bool
}

func (EventBegin) pathEvent()     {}
func (EventLine) pathEvent()      {}
func (EventQuadratic) pathEvent() {}
func (EventCubic) pathEvent()     {}
func (EventEnd) pathEvent()       {}

// Path is an immutable event-encoded path: a point stream plus a verb
// stream. Build one with a PathBuilder.
type Path struct {
	points []Point
	verbs  []PathVerb
}

// Points returns the raw point stream. The slice must not be modified.
func (p Path) Points() []Point { return p.points }

// Verbs returns the raw verb stream. The slice must not be modified.
func (p Path) Verbs() []PathVerb { return p.verbs }

// IsEmpty reports whether the path has no subpaths.
func (p Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Events returns a replayable iterator over the decoded path events.
func (p Path) Events() iter.Seq[PathEvent] {
	return PathEvents(p.points, p.verbs)
}

// PathEvents decodes a raw point/verb stream pair into path events.
// Useful when a path's streams are stored in larger shared buffers.
func PathEvents(points []Point, verbs []PathVerb) iter.Seq[PathEvent] {
	return func(yield func(PathEvent) bool) {
		var first, last Point
		i := 0
		for _, v := range verbs {
			switch v {
			case VerbBegin:
				first = points[i]
				last = first
				i++
				if !yield(EventBegin{At: first}) {
					return
				}
			case VerbLineTo:
				to := points[i]
				i++
				if !yield(EventLine{From: last, To: to}) {
					return
				}
				last = to
			case VerbQuadraticTo:
				ctrl, to := points[i], points[i+1]
				i += 2
				if !yield(EventQuadratic{From: last, Ctrl: ctrl, To: to}) {
					return
				}
				last = to
			case VerbCubicTo:
				c1, c2, to := points[i], points[i+1], points[i+2]
				i += 3
				if !yield(EventCubic{From: last, Ctrl1: c1, Ctrl2: c2, To: to}) {
					return
				}
				last = to
			case VerbEnd:
				if !yield(EventEnd{Last: last, First: first, Close: false}) {
					return
				}
			case VerbClose:
				// Skip the duplicated first point.
				i++
				if !yield(EventEnd{Last: last, First: first, Close: true}) {
					return
				}
			}
		}
	}
}
