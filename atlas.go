package tess

import (
	"errors"
	"image"
	"sync"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Atlas-related errors.
var (
	// ErrAtlasFull is returned when the atlas cannot fit the requested tile.
	ErrAtlasFull = errors.New("tess: texture atlas is full")

	// ErrEmptyTile is returned when inserting a tile with no area.
	ErrEmptyTile = errors.New("tess: atlas tile has no area")
)

// Default atlas settings.
const (
	// DefaultAtlasSize is the default atlas dimension (2048x2048).
	DefaultAtlasSize = 2048

	// MinAtlasSize is the minimum atlas dimension (256x256).
	MinAtlasSize = 256

	// DefaultShelfPadding is the padding between packed tiles.
	DefaultShelfPadding = 1
)

// shelf is one horizontal row in the shelf-packing algorithm.
type shelf struct {
	y      int // top Y coordinate of this shelf
	height int // height of this shelf (tallest item so far)
	nextX  int // next available X position on this shelf
}

// shelfAllocator packs rectangles into a fixed-size area by dividing it
// into horizontal shelves: each new rectangle goes on the first shelf it
// fits on, or opens a new shelf below.
type shelfAllocator struct {
	width, height int
	padding       int
	shelves       []shelf
}

// allocate finds space for a w×h rectangle. Returns false when full.
func (a *shelfAllocator) allocate(w, h int) (image.Rectangle, bool) {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	pw := w + a.padding
	ph := h + a.padding
	if pw > a.width || ph > a.height {
		return image.Rectangle{}, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+pw > a.width {
			continue
		}
		// A shelf cannot grow once items are on it.
		if ph > s.height && s.nextX > 0 {
			continue
		}
		r := image.Rect(s.nextX, s.y, s.nextX+w, s.y+h)
		s.nextX += pw
		if ph > s.height {
			s.height = ph
		}
		return r, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := &a.shelves[n-1]
		newY = last.y + last.height
	}
	if newY+ph > a.height {
		return image.Rectangle{}, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: ph, nextX: pw})
	return image.Rect(0, newY, w, newY+h), true
}

func (a *shelfAllocator) reset() {
	a.shelves = a.shelves[:0]
}

// TextureAtlas packs small images (rasterized glyphs, icons) into one
// backing image and hands out TileInfo entries with normalized UV rects.
// It implements AtlasResolver for the instruction batcher.
//
// The atlas is CPU-side: the renderer uploads Image to the texture
// identified by Texture whenever Dirty reports pending changes.
//
// TextureAtlas is safe for concurrent use.
type TextureAtlas struct {
	mu sync.RWMutex

	texture   TextureID
	img       *image.RGBA
	allocator shelfAllocator
	tiles     map[AtlasKey]TileInfo
	dirty     bool
}

// TextureAtlasConfig configures a TextureAtlas.
type TextureAtlasConfig struct {
	// Width is the atlas width in pixels. Defaults to DefaultAtlasSize.
	Width int

	// Height is the atlas height in pixels. Defaults to DefaultAtlasSize.
	Height int

	// Padding is the spacing between tiles. Defaults to DefaultShelfPadding.
	Padding int
}

// NewTextureAtlas creates an atlas backed by the renderer texture id.
func NewTextureAtlas(texture uint32, config TextureAtlasConfig) *TextureAtlas {
	width := config.Width
	if width < MinAtlasSize {
		width = DefaultAtlasSize
	}
	height := config.Height
	if height < MinAtlasSize {
		height = DefaultAtlasSize
	}
	padding := config.Padding
	if padding <= 0 {
		padding = DefaultShelfPadding
	}

	return &TextureAtlas{
		texture: Texture(texture),
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		allocator: shelfAllocator{
			width:   width,
			height:  height,
			padding: padding,
		},
		tiles: make(map[AtlasKey]TileInfo),
	}
}

// Insert packs src into the atlas under key and returns its tile.
// Reinserting an existing key returns the existing tile without packing
// again.
func (a *TextureAtlas) Insert(key AtlasKey, src image.Image) (TileInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if tile, ok := a.tiles[key]; ok {
		return tile, nil
	}

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return TileInfo{}, ErrEmptyTile
	}

	r, ok := a.allocator.allocate(b.Dx(), b.Dy())
	if !ok {
		return TileInfo{}, ErrAtlasFull
	}

	draw.Copy(a.img, r.Min, src, b, draw.Src, nil)
	a.dirty = true

	w := float32(a.allocator.width)
	h := float32(a.allocator.height)
	tile := TileInfo{
		Texture: a.texture,
		UVRect: Rect{
			X: float32(r.Min.X) / w,
			Y: float32(r.Min.Y) / h,
			W: float32(r.Dx()) / w,
			H: float32(r.Dy()) / h,
		},
	}
	a.tiles[key] = tile
	return tile, nil
}

// ResolveAtlasKey implements AtlasResolver.
func (a *TextureAtlas) ResolveAtlasKey(key AtlasKey) (TileInfo, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	tile, ok := a.tiles[key]
	return tile, ok
}

// Texture returns the renderer texture id backing the atlas.
func (a *TextureAtlas) Texture() TextureID {
	return a.texture
}

// Image returns the backing image for upload. The returned image is
// shared; read it only between Dirty and the upload.
func (a *TextureAtlas) Image() *image.RGBA {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.img
}

// Descriptor returns the texture size and format the renderer should
// allocate for the atlas.
func (a *TextureAtlas) Descriptor() (gputypes.Extent3D, gputypes.TextureFormat) {
	return gputypes.Extent3D{
		Width:              uint32(a.allocator.width),
		Height:             uint32(a.allocator.height),
		DepthOrArrayLayers: 1,
	}, gputypes.TextureFormatRGBA8Unorm
}

// Dirty reports whether tile data changed since the last TakeDirty.
func (a *TextureAtlas) Dirty() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dirty
}

// TakeDirty returns the dirty flag and clears it.
func (a *TextureAtlas) TakeDirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	d := a.dirty
	a.dirty = false
	return d
}

// Reset clears all tiles, making the whole atlas available again.
// The backing pixels are not cleared.
func (a *TextureAtlas) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.allocator.reset()
	clear(a.tiles)
	a.dirty = false
}
