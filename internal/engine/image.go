package engine

import (
	"slices"
	"sync"
)

// Image is a mutex-guarded pixel buffer of palette indices.
// Pixels are stored in row-major order: index = y*width + x.
type Image struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []ColorIndex
}

// NewImage creates a cleared image with the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]ColorIndex, width*height),
	}
}

// Size returns the image dimensions in pixels.
func (i *Image) Size() (width, height int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.width, i.height
}

// Pixels returns a copy of the flat pixel buffer.
func (i *Image) Pixels() []ColorIndex {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.pixels)
}

// SetPixels installs a new flat pixel buffer. The dimensions stay
// authoritative; the buffer is expected to hold width*height entries.
func (i *Image) SetPixels(pixels []ColorIndex) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.pixels = pixels
}

// Pixel returns the palette index at (x, y), or 0 when out of bounds.
func (i *Image) Pixel(x, y int) ColorIndex {
	i.mu.Lock()
	defer i.mu.Unlock()
	if x < 0 || x >= i.width || y < 0 || y >= i.height {
		return 0
	}
	return i.pixels[y*i.width+x]
}

// SetPixel writes the palette index at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (i *Image) SetPixel(x, y int, c ColorIndex) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if x < 0 || x >= i.width || y < 0 || y >= i.height {
		return
	}
	i.pixels[y*i.width+x] = c
}
