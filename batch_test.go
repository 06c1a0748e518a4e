package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadInstruction(x float32, brush Brush) GraphicsInstruction {
	return NewInstruction(Quad{Bounds: XYWH(x, 0, 10, 10)}, NewPathBrush(brush))
}

func TestBatchMergesConsecutiveRuns(t *testing.T) {
	red := fillOnly(ColorRed)
	a := Texture(1)
	b := Texture(2)

	instructions := []GraphicsInstruction{
		quadInstruction(0, red).WithTexture(a),
		quadInstruction(20, red).WithTexture(a),
		quadInstruction(40, red).WithTexture(b),
		quadInstruction(60, red).WithTexture(a),
	}

	ib := NewInstructionBatcher()
	out := ib.Batch(instructions, nil)

	// A,A,B,A: the trailing A cannot merge backwards across B without
	// breaking paint order.
	require.Len(t, out, 3)
	assert.Equal(t, a, out[0].Mesh.Texture)
	assert.Equal(t, b, out[1].Mesh.Texture)
	assert.Equal(t, a, out[2].Mesh.Texture)
	assert.Len(t, out[0].Mesh.Vertices, 8, "two quads share the first batch")
}

func TestBatchSplitsOnClipChange(t *testing.T) {
	red := fillOnly(ColorRed)
	clip := XYWH(0, 0, 100, 100)

	instructions := []GraphicsInstruction{
		quadInstruction(0, red),
		quadInstruction(20, red).WithClipRect(clip),
		quadInstruction(40, red).WithClipRect(clip),
	}

	ib := NewInstructionBatcher()
	out := ib.Batch(instructions, nil)
	require.Len(t, out, 2)
	assert.Equal(t, RectEverything, out[0].ClipRect)
	assert.Equal(t, clip, out[1].ClipRect)
}

func TestBatchSkipsInvisibleInstructions(t *testing.T) {
	red := fillOnly(ColorRed)
	instructions := []GraphicsInstruction{
		quadInstruction(0, red),
		quadInstruction(20, NewBrush()), // invisible, must not break the run
		{},                              // nil primitive
		quadInstruction(40, red),
	}

	ib := NewInstructionBatcher()
	out := ib.Batch(instructions, nil)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Mesh.Vertices, 8)
}

func TestBatchEmptyInput(t *testing.T) {
	ib := NewInstructionBatcher()
	assert.Empty(t, ib.Batch(nil, nil))
}

func TestBatchResolvesAtlasKeys(t *testing.T) {
	key := GlyphKey(42)
	tile := TileInfo{
		Texture: Texture(9),
		UVRect:  XYWH(0.5, 0.25, 0.25, 0.25),
	}
	resolver := AtlasResolverFunc(func(k AtlasKey) (TileInfo, bool) {
		if k == key {
			return tile, true
		}
		return TileInfo{}, false
	})

	inst := quadInstruction(0, fillOnly(ColorWhite)).WithTexture(AtlasTexture(key))
	ib := NewInstructionBatcher(WithAtlasResolver(resolver))
	out := ib.Batch([]GraphicsInstruction{inst}, nil)

	require.Len(t, out, 1)
	assert.Equal(t, Texture(9), out[0].Mesh.Texture)

	// The quad's [0,1]² UVs land inside the tile's sub-rect.
	for _, v := range out[0].Mesh.Vertices {
		assert.GreaterOrEqual(t, v.UV[0], float32(0.5))
		assert.LessOrEqual(t, v.UV[0], float32(0.75))
		assert.GreaterOrEqual(t, v.UV[1], float32(0.25))
		assert.LessOrEqual(t, v.UV[1], float32(0.5))
	}
}

func TestBatchUnresolvedKeyFallsBackToWhite(t *testing.T) {
	inst := quadInstruction(0, fillOnly(ColorWhite)).WithTexture(AtlasTexture(GlyphKey(1)))

	ib := NewInstructionBatcher()
	out := ib.Batch([]GraphicsInstruction{inst}, nil)
	require.Len(t, out, 1)
	assert.True(t, out[0].Mesh.Texture.IsWhite())
}

func TestBatchRenderablesAreIndependent(t *testing.T) {
	red := fillOnly(ColorRed)
	ib := NewInstructionBatcher()

	out := ib.Batch([]GraphicsInstruction{quadInstruction(0, red)}, nil)
	require.Len(t, out, 1)
	before := out[0].Mesh.Vertices[0]

	// A second batch through the same batcher must not alias the first
	// result's storage.
	ib.Batch([]GraphicsInstruction{quadInstruction(500, red)}, nil)
	assert.Equal(t, before, out[0].Mesh.Vertices[0])
}

func TestUVToAtlasSpace(t *testing.T) {
	tile := TileInfo{UVRect: XYWH(0.5, 0.5, 0.25, 0.25)}
	assert.Equal(t, [2]float32{0.5, 0.5}, tile.UVToAtlasSpace(0, 0))
	assert.Equal(t, [2]float32{0.75, 0.75}, tile.UVToAtlasSpace(1, 1))
	assert.Equal(t, [2]float32{0.625, 0.625}, tile.UVToAtlasSpace(0.5, 0.5))
}

func TestScissorRect(t *testing.T) {
	s := NewScissorRect(XYWH(10.4, 20.6, 100, 50), 640, 480)
	assert.Equal(t, ScissorRect{X: 10, Y: 21, Width: 100, Height: 50}, s)
	assert.False(t, s.IsEmpty())
}

func TestScissorRectClampsToViewport(t *testing.T) {
	s := NewScissorRect(XYWH(-50, -50, 1000, 1000), 640, 480)
	assert.Equal(t, ScissorRect{X: 0, Y: 0, Width: 640, Height: 480}, s)
}

func TestScissorRectUnboundedClip(t *testing.T) {
	s := NewScissorRect(RectEverything, 640, 480)
	assert.Equal(t, ScissorRect{X: 0, Y: 0, Width: 640, Height: 480}, s)
}

func TestScissorRectOffscreenClipIsEmpty(t *testing.T) {
	s := NewScissorRect(XYWH(700, 0, 50, 50), 640, 480)
	assert.True(t, s.IsEmpty())
}

func TestInstructionDefaults(t *testing.T) {
	inst := NewInstruction(Circle{Radius: 1}, NewPathBrush(fillOnly(ColorRed)))
	assert.True(t, inst.Transform.IsIdentity())
	assert.Equal(t, RectEverything, inst.ClipRect)
	assert.True(t, inst.Texture.IsWhite())
	assert.False(t, inst.NothingToDraw())

	assert.True(t, GraphicsInstruction{}.NothingToDraw())
	assert.True(t, NewInstruction(Circle{Radius: 1}, NewPathBrush(NewBrush())).NothingToDraw())
}
