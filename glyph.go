package tess

import "golang.org/x/image/math/fixed"

// GlyphPlacement positions one rasterized glyph: the atlas key of its
// bitmap, the top-left corner of its bounding box in 26.6 fixed-point
// pixels (as produced by font shapers), its size and tint.
type GlyphPlacement struct {
	Key           AtlasKey
	Origin        fixed.Point26_6
	Width, Height float32
	Color         Color
}

// Float26_6 converts a 26.6 fixed-point coordinate to float32 pixels.
func Float26_6(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// GlyphQuads converts glyph placements into atlas-textured quad
// instructions, appending to out. Glyphs are drawn without feathering;
// the rasterized bitmap already carries its own edge coverage. Empty
// glyphs (whitespace) are skipped.
func GlyphQuads(placements []GlyphPlacement, transform Matrix, clip Rect, out []GraphicsInstruction) []GraphicsInstruction {
	for _, g := range placements {
		if g.Width <= 0 || g.Height <= 0 || g.Color.IsTransparent() {
			continue
		}
		quad := Quad{Bounds: XYWH(
			Float26_6(g.Origin.X),
			Float26_6(g.Origin.Y),
			g.Width, g.Height,
		)}
		brush := NewPathBrush(NewBrush().WithFillColor(g.Color))
		out = append(out, NewInstruction(quad, brush).
			WithTexture(AtlasTexture(g.Key)).
			WithTransform(transform).
			WithClipRect(clip))
	}
	return out
}
