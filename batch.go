package tess

import (
	"log/slog"
	"math"
	"slices"
)

// Renderable is one GPU draw call: a self-contained mesh and the clip
// rect it must be scissored to.
type Renderable struct {
	ClipRect Rect
	Mesh     Mesh
}

// batchKey groups consecutive instructions that can share a draw call.
type batchKey struct {
	texture TextureID
	clip    Rect
}

// BatcherOption configures an InstructionBatcher.
type BatcherOption func(*InstructionBatcher)

// WithAtlasResolver sets the resolver for atlas-keyed textures.
// Without one, atlas keys fall back to the white texture.
func WithAtlasResolver(r AtlasResolver) BatcherOption {
	return func(ib *InstructionBatcher) {
		ib.resolver = r
	}
}

// WithDrawList supplies the draw list the batcher tessellates into,
// sharing its scratch buffers with other users.
func WithDrawList(dl *DrawList) BatcherOption {
	return func(ib *InstructionBatcher) {
		ib.dl = dl
	}
}

// InstructionBatcher turns an ordered instruction stream into as few
// renderables as possible. Consecutive instructions sharing a concrete
// texture and clip rect are tessellated into one mesh; any change in
// either starts a new batch, preserving paint order.
type InstructionBatcher struct {
	dl       *DrawList
	resolver AtlasResolver
}

// NewInstructionBatcher creates a batcher with its own draw list.
func NewInstructionBatcher(opts ...BatcherOption) *InstructionBatcher {
	ib := &InstructionBatcher{}
	for _, opt := range opts {
		opt(ib)
	}
	if ib.dl == nil {
		ib.dl = NewDrawList()
	}
	return ib
}

// Batch tessellates the instruction stream and appends the resulting
// renderables to out, returning the grown slice. Instructions that would
// draw nothing are skipped and do not break a run.
func (ib *InstructionBatcher) Batch(instructions []GraphicsInstruction, out []Renderable) []Renderable {
	var current batchKey
	open := false

	for _, inst := range instructions {
		if inst.NothingToDraw() {
			continue
		}

		texture, tile, tiled := ib.resolveTexture(inst.Texture)
		key := batchKey{texture: texture, clip: inst.ClipRect}
		if !open || key != current {
			if open {
				out = ib.flush(current.clip, out)
			}
			current = key
			open = true
			ib.dl.Clear()
			ib.dl.SetTexture(texture)
		}

		mark := ib.dl.Capture()
		ib.dl.AddPrimitive(inst.Primitive, inst.Brush, inst.Transform)
		if tiled {
			// Fill UVs cover [0,1]²; remap them into the tile's
			// sub-rect of the atlas texture.
			ib.dl.MapRange(ib.dl.CaptureRange(mark), func(v *Vertex) {
				v.UV = tile.UVToAtlasSpace(v.UV[0], v.UV[1])
			})
		}
	}

	if open {
		out = ib.flush(current.clip, out)
	}
	return out
}

// resolveTexture maps an atlas key to its concrete texture and tile.
// Unresolved keys fall back to the white texture so the draw still
// happens, just untextured.
func (ib *InstructionBatcher) resolveTexture(t TextureID) (TextureID, TileInfo, bool) {
	if t.Kind != TextureKindAtlasKey {
		return t, TileInfo{}, false
	}
	if ib.resolver != nil {
		if tile, ok := ib.resolver.ResolveAtlasKey(t.Key); ok {
			return tile.Texture, tile, true
		}
	}
	Logger().Warn("batch: unresolved atlas key",
		slog.Uint64("id", t.Key.ID),
		slog.Int("kind", int(t.Key.Kind)))
	return WhiteTexture(), TileInfo{}, false
}

// flush snapshots the draw list's mesh into a renderable.
func (ib *InstructionBatcher) flush(clip Rect, out []Renderable) []Renderable {
	m := ib.dl.Mesh()
	if m.IsEmpty() {
		return out
	}
	Logger().Debug("batch: renderable",
		slog.Int("vertices", len(m.Vertices)),
		slog.Int("indices", len(m.Indices)))
	return append(out, Renderable{
		ClipRect: clip,
		Mesh: Mesh{
			Vertices: slices.Clone(m.Vertices),
			Indices:  slices.Clone(m.Indices),
			Texture:  m.Texture,
		},
	})
}

// ScissorRect is an integer clip rectangle in framebuffer pixels, ready
// for a render pass scissor state.
type ScissorRect struct {
	X, Y          uint32
	Width, Height uint32
}

// NewScissorRect rounds a clip rect to pixels and clamps it to the
// viewport. Unbounded clips (RectEverything) cover the whole viewport.
func NewScissorRect(clip Rect, viewportWidth, viewportHeight uint32) ScissorRect {
	vw := float64(viewportWidth)
	vh := float64(viewportHeight)

	// An infinite origin plus an infinite size is NaN; that only arises
	// for the unbounded clip, which means the far viewport edge.
	maxX := float64(clip.X) + float64(clip.W)
	if math.IsNaN(maxX) {
		maxX = vw
	}
	maxY := float64(clip.Y) + float64(clip.H)
	if math.IsNaN(maxY) {
		maxY = vh
	}

	x0 := clampFinite(math.Round(float64(clip.X)), 0, vw)
	y0 := clampFinite(math.Round(float64(clip.Y)), 0, vh)
	x1 := clampFinite(math.Round(maxX), x0, vw)
	y1 := clampFinite(math.Round(maxY), y0, vh)

	return ScissorRect{
		X:      uint32(x0),
		Y:      uint32(y0),
		Width:  uint32(x1 - x0),
		Height: uint32(y1 - y0),
	}
}

// IsEmpty reports whether the scissor cuts away everything.
func (s ScissorRect) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// clampFinite clamps v to [lo, hi], mapping NaN and -Inf to lo and +Inf
// to hi.
func clampFinite(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
