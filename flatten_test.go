package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flattenPath(t *testing.T, f PathFlattener, path Path) ([]Point, []FlattenedContour) {
	t.Helper()
	return f.Flatten(path, nil, nil)
}

func TestFlattenLinesPassThrough(t *testing.T) {
	var b PathBuilder
	b.Begin(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.LineTo(Pt(10, 10))
	handle := b.End(false)

	buf, contours := flattenPath(t, PathFlattener{}, b.Path())
	require.Len(t, contours, 1)
	assert.Equal(t, handle, contours[0].Contour)
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}}, contours[0].Points(buf))
}

func TestFlattenClosedContourEndsAtFirstPoint(t *testing.T) {
	var b PathBuilder
	b.Rect(XYWH(0, 0, 10, 5))

	buf, contours := flattenPath(t, PathFlattener{}, b.Path())
	require.Len(t, contours, 1)
	pts := contours[0].Points(buf)
	require.Len(t, pts, 5)
	assert.Equal(t, pts[0], pts[4])
}

func TestFlattenFixedSegments(t *testing.T) {
	var b PathBuilder
	b.Begin(Pt(0, 0))
	b.QuadraticTo(Pt(5, 10), Pt(10, 0))
	b.End(false)

	buf, contours := flattenPath(t, PathFlattener{FixedSegments: 8}, b.Path())
	require.Len(t, contours, 1)
	pts := contours[0].Points(buf)
	assert.Len(t, pts, 9, "start point plus 8 samples")
	assert.Equal(t, Pt(0, 0), pts[0])
	assert.Equal(t, Pt(10, 0), pts[8])
}

func TestFlattenAdaptiveSegmentBounds(t *testing.T) {
	// A nearly flat curve bottoms out at the minimum.
	assert.Equal(t, flattenMinSegments, quadraticSegments(Pt(0, 0), Pt(5, 0.1), Pt(10, 0), flattenTolerance))

	// A huge curve saturates at the maximum.
	assert.Equal(t, flattenMaxSegments,
		cubicSegments(Pt(0, 0), Pt(0, 2000), Pt(2000, 2000), Pt(2000, 0), flattenTolerance))

	// A zero-length chord cannot divide; fall back to the minimum.
	assert.Equal(t, flattenMinSegments, quadraticSegments(Pt(0, 0), Pt(5, 5), Pt(0, 0), flattenTolerance))
}

func TestFlattenLowerToleranceMeansMoreSegments(t *testing.T) {
	coarse := quadraticSegments(Pt(0, 0), Pt(50, 100), Pt(100, 0), 7)
	fine := quadraticSegments(Pt(0, 0), Pt(50, 100), Pt(100, 0), 1)
	assert.Greater(t, fine, coarse)
}

func TestFlattenDropsCoincidentPoints(t *testing.T) {
	var b PathBuilder
	b.Begin(Pt(0, 0))
	b.LineTo(Pt(0, 0))
	b.LineTo(Pt(5, 0))
	b.LineTo(Pt(5, 0))
	b.End(false)

	buf, contours := flattenPath(t, PathFlattener{}, b.Path())
	assert.Equal(t, []Point{{0, 0}, {5, 0}}, contours[0].Points(buf))
}

func TestFlattenMultipleContoursShareBuffer(t *testing.T) {
	var b PathBuilder
	first := b.Rect(XYWH(0, 0, 1, 1))
	second := b.Triangle(Pt(5, 5), Pt(6, 5), Pt(5, 6))

	buf, contours := flattenPath(t, PathFlattener{}, b.Path())
	require.Len(t, contours, 2)
	assert.Equal(t, first, contours[0].Contour)
	assert.Equal(t, second, contours[1].Contour)
	assert.Equal(t, contours[0].End, contours[1].Start, "contours are contiguous in the buffer")
	assert.Equal(t, len(buf), contours[1].End)
}

func TestFlattenContourHandlesMatchBuilder(t *testing.T) {
	var b PathBuilder
	b.Begin(Pt(0, 0))
	b.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	curveHandle := b.End(false)
	rectHandle := b.Rect(XYWH(20, 0, 5, 5))

	_, contours := flattenPath(t, PathFlattener{}, b.Path())
	require.Len(t, contours, 2)
	assert.Equal(t, curveHandle, contours[0].Contour)
	assert.Equal(t, rectHandle, contours[1].Contour)
}

func TestFlattenCurveEndsOnTarget(t *testing.T) {
	var b PathBuilder
	b.Begin(Pt(0, 0))
	b.QuadraticTo(Pt(100, 200), Pt(200, 0))
	b.End(false)

	buf, contours := flattenPath(t, PathFlattener{}, b.Path())
	pts := contours[0].Points(buf)
	assert.Equal(t, Pt(200, 0), pts[len(pts)-1])
	// Samples stay inside the curve's convex hull.
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, float32(0))
		assert.LessOrEqual(t, p.X, float32(200))
		assert.GreaterOrEqual(t, p.Y, float32(0))
		assert.LessOrEqual(t, p.Y, float32(100.001))
	}
}
