package tess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, float32(5), p.Length())
	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, 2), p.Sub(Pt(1, 2)))
	assert.Equal(t, Pt(6, 8), p.Mul(2))
	assert.Equal(t, float32(11), p.Dot(Pt(1, 2)))
	assert.Equal(t, float32(2), p.Cross(Pt(1, 2)))
	assert.Equal(t, Pt(4, -3), p.Perp())
	assert.Equal(t, Pt(0.6, 0.8), p.Normalize())
	assert.Equal(t, Point{}, Point{}.Normalize())
	assert.Equal(t, Pt(5, 6), Pt(0, 0).Lerp(Pt(10, 12), 0.5))
	assert.True(t, Pt(1, 1).approxEq(Pt(1+5e-7, 1-5e-7)))
	assert.False(t, Pt(1, 1).approxEq(Pt(1.001, 1)))
}

func TestRectBasics(t *testing.T) {
	r := XYWH(10, 20, 30, 40)
	assert.Equal(t, Pt(10, 20), r.Min())
	assert.Equal(t, Pt(40, 60), r.Max())
	assert.False(t, r.IsEmpty())
	assert.True(t, XYWH(0, 0, 0, 5).IsEmpty())

	got := r.Intersect(XYWH(0, 0, 25, 25))
	assert.Equal(t, XYWH(10, 20, 15, 5), got)
	assert.True(t, r.Intersect(XYWH(100, 100, 5, 5)).IsEmpty())

	assert.True(t, r.Contains(Pt(10, 20)))
	assert.False(t, r.Contains(Pt(40, 60)))
}

func TestPathBounds(t *testing.T) {
	pts := []Point{{1, 5}, {-2, 3}, {4, -1}}
	assert.Equal(t, XYWH(-2, -1, 6, 6), PathBounds(pts))
	assert.Equal(t, Rect{}, PathBounds(nil))
}

func TestMatrixTransform(t *testing.T) {
	assert.True(t, Identity().IsIdentity())

	m := Translate(10, 20)
	assert.Equal(t, Pt(11, 22), m.TransformPoint(Pt(1, 2)))
	assert.Equal(t, Pt(1, 2), m.TransformVector(Pt(1, 2)))

	s := Scale(2, 3)
	assert.Equal(t, Pt(2, 6), s.TransformPoint(Pt(1, 2)))

	// Translate then scale versus scale then translate.
	assert.Equal(t, Pt(22, 66), s.Multiply(m).TransformPoint(Pt(1, 2)))
	assert.Equal(t, Pt(12, 26), m.Multiply(s).TransformPoint(Pt(1, 2)))

	r := Rotate(float32(math.Pi / 2))
	got := r.TransformPoint(Pt(1, 0))
	assert.InDelta(t, 0, got.X, 1e-6)
	assert.InDelta(t, 1, got.Y, 1e-6)
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Scaled(2, 4).Rotated(0.7)
	inv, ok := m.Invert()
	assert.True(t, ok)

	p := Pt(13, 37)
	back := inv.TransformPoint(m.TransformPoint(p))
	assert.InDelta(t, p.X, back.X, 1e-4)
	assert.InDelta(t, p.Y, back.Y, 1e-4)

	_, ok = Scale(0, 1).Invert()
	assert.False(t, ok)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, ColorWhite, Hex("#ffffff"))
	assert.Equal(t, ColorRed, Hex("ff0000"))
	assert.Equal(t, Color{R: 1, G: 1, B: 1, A: 0}, Hex("#ffffff00"))
	assert.Equal(t, ColorTransparent, Hex("xyz"))
	assert.Equal(t, ColorTransparent, Hex("#12345"))
}

func TestColorOps(t *testing.T) {
	assert.True(t, ColorTransparent.IsTransparent())
	assert.False(t, ColorBlack.IsTransparent())
	assert.Equal(t, float32(0.5), ColorWhite.WithAlpha(0.5).A)

	half := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	pm := half.Premultiply()
	assert.Equal(t, Color{R: 0.5, G: 0.25, B: 0, A: 0.5}, pm)

	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	assert.Equal(t, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, mid)
}
