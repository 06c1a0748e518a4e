package tess

// FillStyle describes how a shape's interior is painted.
// The zero value is a transparent (invisible) fill.
type FillStyle struct {
	Color Color
}

// LineCap specifies the shape at the open ends of a stroked contour.
type LineCap uint8

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt LineCap = iota
	// CapSquare extends the stroke half a line width past the endpoint.
	CapSquare
	// CapRound closes the end with a half disc.
	CapRound
)

// LineJoin specifies how stroked segments are connected.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges until they meet.
	JoinMiter LineJoin = iota
	// JoinBevel connects the outer edge corners with a single triangle.
	JoinBevel
	// JoinRound connects the outer edges with a circular fan.
	JoinRound
)

// StrokeStyle describes how a contour's outline is stroked.
type StrokeStyle struct {
	Color     Color
	LineWidth uint32
	LineJoin  LineJoin
	LineCap   LineCap

	// AllowOverlap permits join geometry to overlap edge quads instead
	// of being clipped against them. Overlap is only visible with
	// translucent stroke colors.
	AllowOverlap bool
}

// DefaultStrokeStyle returns a white 2px miter/butt stroke.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color:     ColorWhite,
		LineWidth: 2,
		LineJoin:  JoinMiter,
		LineCap:   CapButt,
	}
}

// IsVisible reports whether stroking with s would make a visible mark.
func (s StrokeStyle) IsVisible() bool {
	return !s.Color.IsTransparent() && s.LineWidth > 0
}

// WithColor returns a copy of s with the stroke color replaced.
func (s StrokeStyle) WithColor(c Color) StrokeStyle {
	s.Color = c
	return s
}

// WithLineWidth returns a copy of s with the line width replaced.
func (s StrokeStyle) WithLineWidth(w uint32) StrokeStyle {
	s.LineWidth = w
	return s
}

// WithLineJoin returns a copy of s with the join style replaced.
func (s StrokeStyle) WithLineJoin(j LineJoin) StrokeStyle {
	s.LineJoin = j
	return s
}

// WithLineCap returns a copy of s with the cap style replaced.
func (s StrokeStyle) WithLineCap(c LineCap) StrokeStyle {
	s.LineCap = c
	return s
}

// Brush bundles the fill and stroke styles for one draw operation.
type Brush struct {
	FillStyle   FillStyle
	StrokeStyle StrokeStyle
	Antialias   bool
}

// NewBrush creates a brush with transparent fill and stroke and
// antialiasing disabled. Stroke parameters other than color come from
// DefaultStrokeStyle.
func NewBrush() Brush {
	return Brush{
		StrokeStyle: DefaultStrokeStyle().WithColor(ColorTransparent),
	}
}

// Filled creates an antialiased brush that fills with the given color.
func Filled(c Color) Brush {
	b := NewBrush()
	b.FillStyle.Color = c
	b.Antialias = true
	return b
}

// WithFillColor returns a copy of b with the fill color replaced.
func (b Brush) WithFillColor(c Color) Brush {
	b.FillStyle.Color = c
	return b
}

// WithStrokeColor returns a copy of b with the stroke color replaced.
func (b Brush) WithStrokeColor(c Color) Brush {
	b.StrokeStyle.Color = c
	return b
}

// WithLineWidth returns a copy of b with the stroke width replaced.
func (b Brush) WithLineWidth(w uint32) Brush {
	b.StrokeStyle.LineWidth = w
	return b
}

// WithLineJoin returns a copy of b with the stroke join replaced.
func (b Brush) WithLineJoin(j LineJoin) Brush {
	b.StrokeStyle.LineJoin = j
	return b
}

// WithLineCap returns a copy of b with the stroke cap replaced.
func (b Brush) WithLineCap(c LineCap) Brush {
	b.StrokeStyle.LineCap = c
	return b
}

// WithAntialias returns a copy of b with antialiasing toggled.
func (b Brush) WithAntialias(enable bool) Brush {
	b.Antialias = enable
	return b
}

// NoFill returns a copy of b with the fill made transparent.
func (b Brush) NoFill() Brush {
	b.FillStyle = FillStyle{}
	return b
}

// NoStroke returns a copy of b with the stroke made transparent.
func (b Brush) NoStroke() Brush {
	b.StrokeStyle.Color = ColorTransparent
	return b
}

// NothingToDraw reports whether both fill and stroke are transparent.
func (b Brush) NothingToDraw() bool {
	return b.FillStyle.Color.IsTransparent() && b.StrokeStyle.Color.IsTransparent()
}

// PathBrush carries a default brush plus per-contour overrides, letting
// one path draw its subpaths with different styles.
type PathBrush struct {
	Default   Brush
	overrides map[Contour]Brush
}

// NewPathBrush creates a PathBrush with the given default.
func NewPathBrush(def Brush) PathBrush {
	return PathBrush{Default: def}
}

// Set overrides the brush for one contour.
func (pb *PathBrush) Set(c Contour, b Brush) {
	if pb.overrides == nil {
		pb.overrides = make(map[Contour]Brush)
	}
	pb.overrides[c] = b
}

// GetOrDefault returns the contour's brush, falling back to the default.
func (pb *PathBrush) GetOrDefault(c Contour) Brush {
	if b, ok := pb.overrides[c]; ok {
		return b
	}
	return pb.Default
}

// NothingToDraw reports whether no contour would make a visible mark.
func (pb *PathBrush) NothingToDraw() bool {
	if !pb.Default.NothingToDraw() {
		return false
	}
	for _, b := range pb.overrides {
		if !b.NothingToDraw() {
			return false
		}
	}
	return true
}
