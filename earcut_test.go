package tess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangulate(t *testing.T, data []Point, holes []uint32) []uint32 {
	t.Helper()
	var e Earcut
	out, ok := e.Triangulate(data, holes, nil)
	require.True(t, ok)
	return out
}

func TestEarcutTriangle(t *testing.T) {
	out := triangulate(t, []Point{{0, 0}, {10, 0}, {0, 10}}, nil)
	require.Len(t, out, 3)
	assert.ElementsMatch(t, []uint32{0, 1, 2}, out)
}

func TestEarcutSquare(t *testing.T) {
	data := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := triangulate(t, data, nil)
	assert.Len(t, out, 6, "a quad splits into two triangles")
	assert.InDelta(t, 0, Deviation(data, nil, out), 1e-6)
}

func TestEarcutWindingInsensitive(t *testing.T) {
	cw := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	ccw := []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}

	var e Earcut
	outCW, ok := e.Triangulate(cw, nil, nil)
	require.True(t, ok)
	outCCW, ok := e.Triangulate(ccw, nil, nil)
	require.True(t, ok)

	assert.Len(t, outCW, 6)
	assert.Len(t, outCCW, 6)
}

func TestEarcutConcavePolygon(t *testing.T) {
	// L shape.
	data := []Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	out := triangulate(t, data, nil)
	assert.Len(t, out, 12, "six vertices give four triangles")
	assert.InDelta(t, 0, Deviation(data, nil, out), 1e-6)
}

func TestEarcutSquareWithHole(t *testing.T) {
	data := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, // outer
		{4, 4}, {6, 4}, {6, 6}, {4, 6}, // hole
	}
	out := triangulate(t, data, []uint32{4})
	assert.Len(t, out, 24, "bridged ring of ten vertices gives eight triangles")
	assert.InDelta(t, 0, Deviation(data, []uint32{4}, out), 1e-4)

	// Nothing references out-of-range vertices.
	for _, idx := range out {
		assert.Less(t, idx, uint32(len(data)))
	}
}

func TestEarcutTooFewPoints(t *testing.T) {
	var e Earcut
	_, ok := e.Triangulate([]Point{{0, 0}, {1, 1}}, nil, nil)
	assert.False(t, ok)
	_, ok = e.Triangulate(nil, nil, nil)
	assert.False(t, ok)
}

func TestEarcutDegenerateCollinear(t *testing.T) {
	var e Earcut
	out, ok := e.Triangulate([]Point{{0, 0}, {1, 0}, {2, 0}}, nil, nil)
	require.True(t, ok)
	assert.Empty(t, out, "zero-area input produces no triangles")
}

func TestEarcutDuplicateClosingPoint(t *testing.T) {
	// Rings that repeat the first point at the end still triangulate.
	data := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	out := triangulate(t, data, nil)
	assert.InDelta(t, 0, Deviation(data, nil, out), 1e-6)
}

func TestEarcutLargeRingUsesZOrderPath(t *testing.T) {
	// Above the z-order threshold the hashed ear test takes over; the
	// result must stay a full cover of the polygon.
	const n = 100
	data := make([]Point, 0, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / n
		data = append(data, Pt(
			float32(100*math.Cos(a)),
			float32(100*math.Sin(a)),
		))
	}
	require.Greater(t, n, zOrderThreshold)

	out := triangulate(t, data, nil)
	assert.Len(t, out, (n-2)*3)
	assert.InDelta(t, 0, Deviation(data, nil, out), 1e-3)
}

func TestEarcutReuseAcrossCalls(t *testing.T) {
	var e Earcut
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	first, ok := e.Triangulate(square, nil, nil)
	require.True(t, ok)
	second, ok := e.Triangulate(square, nil, nil)
	require.True(t, ok)
	assert.Equal(t, first, second, "reusing the arena must not change results")
}

func TestEarcutAppendsToOut(t *testing.T) {
	var e Earcut
	out := []uint32{99}
	out, ok := e.Triangulate([]Point{{0, 0}, {10, 0}, {0, 10}}, nil, out)
	require.True(t, ok)
	require.Len(t, out, 4)
	assert.Equal(t, uint32(99), out[0])
}

func TestDeviationDetectsMissingTriangles(t *testing.T) {
	data := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	full := triangulate(t, data, nil)
	assert.InDelta(t, 0, Deviation(data, nil, full), 1e-6)

	half := full[:3]
	assert.InDelta(t, 0.5, Deviation(data, nil, half), 1e-6)
}
