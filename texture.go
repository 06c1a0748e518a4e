package tess

// TextureKind discriminates the TextureID variants.
type TextureKind uint8

const (
	// TextureKindWhite is the built-in solid white texture.
	TextureKindWhite TextureKind = iota
	// TextureKindTexture is a concrete renderer texture.
	TextureKindTexture
	// TextureKindAtlasKey is a logical atlas entry, resolved to a
	// concrete texture and UV sub-rect at batch time.
	TextureKindAtlasKey
)

// TextureID identifies the texture a mesh or instruction samples.
// The zero value is the white texture. TextureID is comparable, so it can
// serve directly as a batching key.
type TextureID struct {
	Kind TextureKind
	ID   uint32   // renderer texture id when Kind is TextureKindTexture
	Key  AtlasKey // atlas entry when Kind is TextureKindAtlasKey
}

// WhiteTexture returns the built-in solid white texture id.
func WhiteTexture() TextureID {
	return TextureID{}
}

// Texture returns the id of a concrete renderer texture.
func Texture(id uint32) TextureID {
	return TextureID{Kind: TextureKindTexture, ID: id}
}

// AtlasTexture returns a texture id referring to an atlas entry.
func AtlasTexture(key AtlasKey) TextureID {
	return TextureID{Kind: TextureKindAtlasKey, Key: key}
}

// IsWhite reports whether t is the white texture.
func (t TextureID) IsWhite() bool {
	return t.Kind == TextureKindWhite
}

// AtlasKeyKind discriminates logical atlas entries.
type AtlasKeyKind uint8

const (
	// AtlasKeyGlyph is a rasterized glyph, identified by a caller-chosen
	// hash of font, size and glyph id.
	AtlasKeyGlyph AtlasKeyKind = iota
	// AtlasKeyImage is a small image tile.
	AtlasKeyImage
)

// AtlasKey is the logical identity of an atlas tile. Comparable, so it
// works as a map key and inside TextureID.
type AtlasKey struct {
	Kind AtlasKeyKind
	ID   uint64
}

// GlyphKey builds an AtlasKey for a rasterized glyph.
func GlyphKey(id uint64) AtlasKey {
	return AtlasKey{Kind: AtlasKeyGlyph, ID: id}
}

// ImageKey builds an AtlasKey for an image tile.
func ImageKey(id uint64) AtlasKey {
	return AtlasKey{Kind: AtlasKeyImage, ID: id}
}

// TileInfo locates one atlas entry: the concrete texture holding it and
// its normalized UV sub-rect within that texture.
type TileInfo struct {
	Texture TextureID
	UVRect  Rect
}

// UVToAtlasSpace remaps a UV coordinate in [0,1]² into the tile's
// sub-rect of the atlas texture.
func (t TileInfo) UVToAtlasSpace(u, v float32) [2]float32 {
	return [2]float32{
		t.UVRect.X + u*t.UVRect.W,
		t.UVRect.Y + v*t.UVRect.H,
	}
}

// AtlasResolver maps atlas keys to their tiles. Unresolved keys return
// false; the batcher then falls back to the white texture.
type AtlasResolver interface {
	ResolveAtlasKey(key AtlasKey) (TileInfo, bool)
}

// AtlasResolverFunc adapts a function to the AtlasResolver interface.
type AtlasResolverFunc func(key AtlasKey) (TileInfo, bool)

// ResolveAtlasKey implements AtlasResolver.
func (f AtlasResolverFunc) ResolveAtlasKey(key AtlasKey) (TileInfo, bool) {
	return f(key)
}
