package engine

import (
	"slices"
	"sync"
)

// MaxTileCoord is the largest value a tile coordinate can hold in the
// snapshot format.
const MaxTileCoord = 0xFFFF

// Tile is a (x, y) tile coordinate into a tilemap's source image.
type Tile struct {
	X int
	Y int
}

// ImageSource identifies where a tilemap's tiles are drawn from: either an
// index into the engine's image pool or an image embedded in the tilemap.
type ImageSource interface {
	imageSource()
}

// ImageIndex is an ImageSource referring to the shared image pool.
type ImageIndex int

func (ImageIndex) imageSource() {}

// EmbeddedImage is an ImageSource carrying its own image.
type EmbeddedImage struct {
	Image *Image
}

func (EmbeddedImage) imageSource() {}

// Tilemap is a mutex-guarded grid of tile coordinates.
// Tiles are stored in row-major order: index = y*width + x.
type Tilemap struct {
	mu     sync.Mutex
	width  int
	height int
	imgsrc ImageSource
	tiles  []Tile
}

// NewTilemap creates a cleared tilemap with the given dimensions and source.
func NewTilemap(width, height int, imgsrc ImageSource) *Tilemap {
	return &Tilemap{
		width:  width,
		height: height,
		imgsrc: imgsrc,
		tiles:  make([]Tile, width*height),
	}
}

// Size returns the tilemap dimensions in tiles.
func (t *Tilemap) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Source returns the tilemap's image source.
func (t *Tilemap) Source() ImageSource {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.imgsrc
}

// Tiles returns a copy of the flat tile buffer.
func (t *Tilemap) Tiles() []Tile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.tiles)
}

// SetTiles installs a new flat tile buffer.
func (t *Tilemap) SetTiles(tiles []Tile) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tiles = tiles
}

// TileAt returns the tile at (x, y), or the zero tile when out of bounds.
func (t *Tilemap) TileAt(x, y int) Tile {
	t.mu.Lock()
	defer t.mu.Unlock()
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Tile{}
	}
	return t.tiles[y*t.width+x]
}

// SetTile writes the tile at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (t *Tilemap) SetTile(x, y int, tile Tile) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.tiles[y*t.width+x] = tile
}
