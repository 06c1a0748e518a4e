package tess

// GraphicsInstruction is one retained draw command: a primitive, its
// styling, the texture it samples, and where and how it is placed.
// Instructions are cheap to store and re-batch every frame.
type GraphicsInstruction struct {
	Primitive Primitive
	Brush     PathBrush

	// Texture is what the fill samples. Atlas keys are resolved to a
	// concrete texture and UV sub-rect at batch time.
	Texture TextureID

	Transform Matrix
	ClipRect  Rect
}

// NewInstruction creates an instruction with the identity transform, an
// unbounded clip and the white texture.
func NewInstruction(p Primitive, brush PathBrush) GraphicsInstruction {
	return GraphicsInstruction{
		Primitive: p,
		Brush:     brush,
		Transform: Identity(),
		ClipRect:  RectEverything,
	}
}

// WithTexture returns a copy of gi sampling the given texture.
func (gi GraphicsInstruction) WithTexture(t TextureID) GraphicsInstruction {
	gi.Texture = t
	return gi
}

// WithTransform returns a copy of gi with the placement transform replaced.
func (gi GraphicsInstruction) WithTransform(m Matrix) GraphicsInstruction {
	gi.Transform = m
	return gi
}

// WithClipRect returns a copy of gi clipped to r.
func (gi GraphicsInstruction) WithClipRect(r Rect) GraphicsInstruction {
	gi.ClipRect = r
	return gi
}

// NothingToDraw reports whether tessellating gi would produce no
// geometry, letting the batcher skip it without touching the mesh.
func (gi GraphicsInstruction) NothingToDraw() bool {
	return gi.Primitive == nil || gi.Brush.NothingToDraw()
}
