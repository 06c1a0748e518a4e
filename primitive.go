package tess

// Primitive is one drawable shape. The concrete types are Circle, Quad
// and PathPrimitive; DrawList.AddPrimitive dispatches over them
// exhaustively.
type Primitive interface {
	primitive()
}

// Circle is a filled/stroked circle.
type Circle struct {
	Center Point
	Radius float32
}

// Quad is an axis-aligned rectangle with optional rounded corners.
type Quad struct {
	Bounds  Rect
	Corners Corners
}

// PathPrimitive draws an arbitrary path. Per-contour styling comes from
// the PathBrush supplied alongside the primitive.
type PathPrimitive struct {
	Path Path
}

func (Circle) primitive()        {}
func (Quad) primitive()          {}
func (PathPrimitive) primitive() {}
