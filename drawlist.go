package tess

import "log/slog"

// DefaultFeathering is the antialias feather width in pixels.
const DefaultFeathering = 1.0

// VertexRange is a half-open range of vertices in a DrawList's mesh.
type VertexRange struct {
	Start, End int
}

// IsEmpty reports whether the range covers no vertices.
func (r VertexRange) IsEmpty() bool {
	return r.End <= r.Start
}

// DrawListOption configures a DrawList.
type DrawListOption func(*DrawList)

// WithFeathering sets the antialias feather width in pixels.
// Zero disables feathering even for antialiased brushes.
func WithFeathering(px float32) DrawListOption {
	return func(dl *DrawList) {
		dl.feathering = px
	}
}

// WithFlattener replaces the curve flattener.
func WithFlattener(f PathFlattener) DrawListOption {
	return func(dl *DrawList) {
		dl.flattener = f
	}
}

// DrawList tessellates shapes and paths into one indexed triangle mesh.
// It owns all scratch state (path builder, flattened point buffer,
// ear-clipping arena), so reusing one list across frames avoids
// per-frame allocation. A DrawList is not safe for concurrent use.
type DrawList struct {
	feathering float32
	texture    TextureID

	mesh      Mesh
	flattener PathFlattener
	builder   PathBuilder
	stroker   StrokeTessellator
	earcut    Earcut

	flatBuf   []Point
	contours  []FlattenedContour
	normals   []Point
	earcutOut []uint32
}

// NewDrawList creates an empty draw list with DefaultFeathering.
func NewDrawList(opts ...DrawListOption) *DrawList {
	dl := &DrawList{feathering: DefaultFeathering}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// Mesh returns the accumulated geometry. The mesh is owned by the draw
// list and is invalidated by Clear.
func (dl *DrawList) Mesh() *Mesh {
	return &dl.mesh
}

// Clear discards the accumulated geometry, keeping allocated capacity.
// The texture binding and feathering settings survive.
func (dl *DrawList) Clear() {
	dl.mesh.Clear()
	dl.mesh.Texture = dl.texture
}

// SetFeathering changes the antialias feather width in pixels.
func (dl *DrawList) SetFeathering(px float32) {
	dl.feathering = px
}

// Feathering returns the antialias feather width in pixels.
func (dl *DrawList) Feathering() float32 {
	return dl.feathering
}

// SetTexture binds the texture subsequent fills sample. Non-white
// textures get UVs mapped from each shape's bounding box; the white
// texture uses WhiteUV everywhere.
func (dl *DrawList) SetTexture(t TextureID) {
	dl.texture = t
	dl.mesh.Texture = t
}

// Capture marks the current vertex count. Pair with CaptureRange to
// post-process the vertices a set of draw calls produced.
func (dl *DrawList) Capture() int {
	return len(dl.mesh.Vertices)
}

// CaptureRange returns the vertices appended since the mark.
func (dl *DrawList) CaptureRange(mark int) VertexRange {
	return VertexRange{Start: mark, End: len(dl.mesh.Vertices)}
}

// MapRange applies fn to every vertex in the captured range, in place.
func (dl *DrawList) MapRange(r VertexRange, fn func(*Vertex)) {
	for i := r.Start; i < r.End; i++ {
		fn(&dl.mesh.Vertices[i])
	}
}

// AddCircle tessellates a circle with the brush. Circles are convex, so
// the fill is a triangle fan.
func (dl *DrawList) AddCircle(circle Circle, brush Brush, transform Matrix) {
	if brush.NothingToDraw() || circle.Radius <= 0 {
		return
	}
	dl.builder.Reset()
	dl.builder.Circle(circle.Center, circle.Radius)
	dl.fillAndStrokeSingle(brush, transform, true)
}

// AddQuad tessellates an axis-aligned, optionally round-cornered
// rectangle with the brush.
func (dl *DrawList) AddQuad(quad Quad, brush Brush, transform Matrix) {
	if brush.NothingToDraw() || quad.Bounds.IsEmpty() {
		return
	}
	dl.builder.Reset()
	if quad.Corners.IsZero() {
		dl.builder.Rect(quad.Bounds)
	} else {
		dl.builder.RoundRect(quad.Bounds, quad.Corners)
	}
	dl.fillAndStrokeSingle(brush, transform, true)
}

// AddPath tessellates an arbitrary path. Contours may be concave and
// are triangulated by ear clipping; per-contour brushes come from the
// PathBrush.
func (dl *DrawList) AddPath(path Path, brush PathBrush, transform Matrix) {
	if brush.NothingToDraw() || path.IsEmpty() {
		return
	}
	dl.flatBuf = dl.flatBuf[:0]
	dl.contours = dl.contours[:0]
	dl.flatBuf, dl.contours = dl.flattener.Flatten(path, dl.flatBuf, dl.contours)
	for _, fc := range dl.contours {
		dl.fillAndStrokeContour(fc, brush.GetOrDefault(fc.Contour), transform, false)
	}
}

// AddPrimitive dispatches over the concrete primitive types.
func (dl *DrawList) AddPrimitive(p Primitive, brush PathBrush, transform Matrix) {
	switch prim := p.(type) {
	case Circle:
		dl.AddCircle(prim, brush.Default, transform)
	case Quad:
		dl.AddQuad(prim, brush.Default, transform)
	case PathPrimitive:
		dl.AddPath(prim.Path, brush, transform)
	default:
		Logger().Warn("drawlist: unknown primitive", slog.Any("type", p))
	}
}

// fillAndStrokeSingle flattens the scratch builder's path, which holds
// exactly one contour, and renders it with one brush.
func (dl *DrawList) fillAndStrokeSingle(brush Brush, transform Matrix, convex bool) {
	dl.flatBuf = dl.flatBuf[:0]
	dl.contours = dl.contours[:0]
	dl.flatBuf, dl.contours = dl.flattener.FlattenRaw(dl.builder.points, dl.builder.verbs, dl.flatBuf, dl.contours)
	for _, fc := range dl.contours {
		dl.fillAndStrokeContour(fc, brush, transform, convex)
	}
}

func (dl *DrawList) fillAndStrokeContour(fc FlattenedContour, brush Brush, transform Matrix, convex bool) {
	if brush.NothingToDraw() {
		return
	}
	pts := fc.Points(dl.flatBuf)
	if !transform.IsIdentity() {
		for i := range pts {
			pts[i] = transform.TransformPoint(pts[i])
		}
	}

	feather := float32(0)
	if brush.Antialias {
		feather = dl.feathering
	}

	if !brush.FillStyle.Color.IsTransparent() {
		fill := pts
		// Closed contours carry the first point again at the end; the
		// fill works on the open ring.
		if len(fill) >= 2 && fill[0].approxEq(fill[len(fill)-1]) {
			fill = fill[:len(fill)-1]
		}
		if len(fill) >= 3 {
			fadeTo := brush.StrokeStyle.Color
			if !brush.StrokeStyle.IsVisible() {
				fadeTo = brush.FillStyle.Color.WithAlpha(0)
			}
			if convex {
				dl.fillConvex(fill, brush.FillStyle.Color, fadeTo, feather)
			} else {
				dl.fillConcave(fill, brush.FillStyle.Color, fadeTo, feather)
			}
		}
	}

	dl.stroker.Tessellate(&dl.mesh, pts, brush.StrokeStyle)
}

// fillConvex fans a convex clockwise ring. With feathering, each ring
// point splits into an inner vertex at full fill color and an outer
// vertex at the fade color, and the rim is skinned with feather quads.
func (dl *DrawList) fillConvex(pts []Point, fill, fadeTo Color, feather float32) {
	if pathChecks.Load() && cwSignedArea(pts) <= 0 {
		panic("tess: convex fill requires clockwise winding")
	}
	n := uint32(len(pts))
	bmin, bsize := uvBounds(pts)
	fillColor := fill.array()

	if feather <= 0 {
		base := uint32(len(dl.mesh.Vertices))
		dl.mesh.Reserve(len(pts), (len(pts)-2)*3)
		for _, p := range pts {
			dl.mesh.AddVertex(Vertex{
				Position: [2]float32{p.X, p.Y},
				UV:       dl.uvFor(p, bmin, bsize),
				Color:    fillColor,
			})
		}
		for i := uint32(2); i < n; i++ {
			dl.mesh.AddTriangle(base, base+i-1, base+i)
		}
		return
	}

	dl.featherRing(pts, fill, fadeTo, feather, bmin, bsize)
	base := uint32(len(dl.mesh.Vertices)) - 2*n
	// Fan over the inner vertices (even slots of each pair).
	for i := uint32(2); i < n; i++ {
		dl.mesh.AddTriangle(base, base+2*(i-1), base+2*i)
	}
}

// fillConcave triangulates an arbitrary simple ring by ear clipping.
func (dl *DrawList) fillConcave(pts []Point, fill, fadeTo Color, feather float32) {
	dl.earcutOut = dl.earcutOut[:0]
	var ok bool
	dl.earcutOut, ok = dl.earcut.Triangulate(pts, nil, dl.earcutOut)
	if !ok {
		return
	}
	if dev := Deviation(pts, nil, dl.earcutOut); dev > 1e-3 {
		Logger().Debug("drawlist: ear clipping deviates from ring area",
			slog.Float64("deviation", float64(dev)))
	}

	bmin, bsize := uvBounds(pts)
	fillColor := fill.array()

	if feather <= 0 {
		base := uint32(len(dl.mesh.Vertices))
		dl.mesh.Reserve(len(pts), len(dl.earcutOut))
		for _, p := range pts {
			dl.mesh.AddVertex(Vertex{
				Position: [2]float32{p.X, p.Y},
				UV:       dl.uvFor(p, bmin, bsize),
				Color:    fillColor,
			})
		}
		for _, idx := range dl.earcutOut {
			dl.mesh.Indices = append(dl.mesh.Indices, base+idx)
		}
		return
	}

	dl.featherRing(pts, fill, fadeTo, feather, bmin, bsize)
	base := uint32(len(dl.mesh.Vertices)) - 2*uint32(len(pts))
	// Ring index i landed at the inner vertex of pair i.
	for _, idx := range dl.earcutOut {
		dl.mesh.Indices = append(dl.mesh.Indices, base+2*idx)
	}
}

// featherRing emits an inner/outer vertex pair per ring point and the
// feather quads skinning the rim between them. Pair k sits at pts[k]:
// the inner vertex is nudged inward by half the feather width and keeps
// the fill color, the outer vertex is nudged outward and fades.
func (dl *DrawList) featherRing(pts []Point, fill, fadeTo Color, feather float32, bmin, bsize Point) {
	n := len(pts)
	dl.normals = dl.normals[:0]
	for i := range pts {
		prev := pts[(i+n-1)%n]
		dl.normals = append(dl.normals, pts[i].Sub(prev).Normalize().Perp())
	}

	fillColor := fill.array()
	fadeColor := fadeTo.array()
	base := uint32(len(dl.mesh.Vertices))
	dl.mesh.Reserve(2*n, 6*n)
	for i, p := range pts {
		// Average of the two edge normals meeting at this point.
		dm := dl.normals[i].Add(dl.normals[(i+1)%n]).Normalize().Mul(feather * 0.5)
		inner := p.Sub(dm)
		outer := p.Add(dm)
		uv := dl.uvFor(p, bmin, bsize)
		dl.mesh.AddVertex(Vertex{Position: [2]float32{inner.X, inner.Y}, UV: uv, Color: fillColor})
		dl.mesh.AddVertex(Vertex{Position: [2]float32{outer.X, outer.Y}, UV: uv, Color: fadeColor})
	}
	for i := range uint32(n) {
		j := (i + 1) % uint32(n)
		innerI, outerI := base+2*i, base+2*i+1
		innerJ, outerJ := base+2*j, base+2*j+1
		dl.mesh.AddTriangle(innerJ, innerI, outerI)
		dl.mesh.AddTriangle(outerI, outerJ, innerJ)
	}
}

// uvFor maps a point into the shape's bounding box when a texture is
// bound, and to WhiteUV otherwise.
func (dl *DrawList) uvFor(p Point, bmin, bsize Point) [2]float32 {
	if dl.texture.IsWhite() {
		return WhiteUV
	}
	return [2]float32{
		(p.X - bmin.X) / bsize.X,
		(p.Y - bmin.Y) / bsize.Y,
	}
}

// uvBounds returns the ring's bounding box origin and extent, with the
// extent clamped away from zero so UV mapping never divides by zero.
func uvBounds(pts []Point) (bmin, bsize Point) {
	b := PathBounds(pts)
	bmin = Point{b.X, b.Y}
	bsize = Point{max(b.W, pointEpsilon), max(b.H, pointEpsilon)}
	return bmin, bsize
}

// cwSignedArea is twice the signed area of the ring, positive for
// clockwise winding in a y-down coordinate system.
func cwSignedArea(pts []Point) float32 {
	var area float32
	prev := pts[len(pts)-1]
	for _, p := range pts {
		area += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return area
}
