package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strokeIndices(pts []Point, style StrokeStyle) int {
	var st StrokeTessellator
	var m Mesh
	st.Tessellate(&m, pts, style)
	return len(m.Indices)
}

func TestStrokeNoOps(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}}

	assert.Zero(t, strokeIndices(pts, DefaultStrokeStyle().WithLineWidth(0)), "zero width")
	assert.Zero(t, strokeIndices(pts, DefaultStrokeStyle().WithColor(ColorTransparent)), "transparent")
	assert.Zero(t, strokeIndices([]Point{{0, 0}}, DefaultStrokeStyle()), "single point")
	assert.Zero(t, strokeIndices(nil, DefaultStrokeStyle()), "empty")
}

func TestStrokeSingleSegment(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}}
	// One quad, butt caps add nothing.
	assert.Equal(t, 6, strokeIndices(pts, DefaultStrokeStyle()))
}

func TestStrokeJoinIndexCounts(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}

	// Two edge quads plus one join.
	assert.Equal(t, 12+12, strokeIndices(pts, DefaultStrokeStyle().WithLineJoin(JoinMiter)))
	assert.Equal(t, 12+6, strokeIndices(pts, DefaultStrokeStyle().WithLineJoin(JoinBevel)))
	assert.Equal(t, 12+2*strokeRoundSegments*3, strokeIndices(pts, DefaultStrokeStyle().WithLineJoin(JoinRound)))
}

func TestStrokeCapIndexCounts(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	base := strokeIndices(pts, DefaultStrokeStyle().WithLineCap(CapButt))

	assert.Equal(t, base+2*6, strokeIndices(pts, DefaultStrokeStyle().WithLineCap(CapSquare)))
	assert.Equal(t, base+2*strokeRoundSegments*3, strokeIndices(pts, DefaultStrokeStyle().WithLineCap(CapRound)))
}

func TestStrokeClosedRingWrapsJoins(t *testing.T) {
	// Closed square: four edges, four joins, no caps.
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	got := strokeIndices(pts, DefaultStrokeStyle().WithLineCap(CapRound))
	assert.Equal(t, 4*6+4*12, got, "caps must not appear on closed rings")
}

func TestStrokeTopologyIndependentOfGeometry(t *testing.T) {
	// Same point count, wildly different shapes: identical index counts.
	style := DefaultStrokeStyle().WithLineJoin(JoinRound).WithLineCap(CapRound)

	a := strokeIndices([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, style)
	b := strokeIndices([]Point{{0, 0}, {100, -3}, {7, 250}, {-40, 2}}, style)
	assert.Equal(t, a, b)
}

func TestStrokeMiterStaysWithinLimit(t *testing.T) {
	// A near-180-degree turn would shoot the miter point to infinity
	// without clamping.
	pts := []Point{{0, 0}, {100, 0}, {0, 1}}
	style := DefaultStrokeStyle().WithLineWidth(10)

	var st StrokeTessellator
	var m Mesh
	st.Tessellate(&m, pts, style)

	// The unclamped apex would land far right of the joint at x=100.
	limit := float32(style.LineWidth) / 2 * strokeMiterLimit
	for _, v := range m.Vertices {
		assert.LessOrEqual(t, v.Position[0], 100+limit+1e-3)
	}
}

func TestStrokeVertexColorAndUV(t *testing.T) {
	style := DefaultStrokeStyle().WithColor(ColorRed)
	var st StrokeTessellator
	var m Mesh
	st.Tessellate(&m, []Point{{0, 0}, {10, 0}}, style)

	for _, v := range m.Vertices {
		assert.Equal(t, ColorRed.array(), v.Color)
		assert.Equal(t, WhiteUV, v.UV)
	}
}

func TestStrokeQuadCoversSegment(t *testing.T) {
	var st StrokeTessellator
	var m Mesh
	st.Tessellate(&m, []Point{{0, 0}, {10, 0}}, DefaultStrokeStyle().WithLineWidth(4))

	minP := Pt(m.Vertices[0].Position[0], m.Vertices[0].Position[1])
	maxP := minP
	for _, v := range m.Vertices {
		p := Pt(v.Position[0], v.Position[1])
		minP = minP.Min(p)
		maxP = maxP.Max(p)
	}
	assert.Equal(t, Pt(0, -2), minP)
	assert.Equal(t, Pt(10, 2), maxP)
}
