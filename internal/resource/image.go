package resource

import (
	"fmt"

	"github.com/pixenlabs/pixen/internal/engine"
	"github.com/pixenlabs/pixen/internal/gridpack"
)

// ImageData is the serializable form of an image: authoritative dimensions
// plus the packed pixel grid.
type ImageData struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Data   [][]int `yaml:"data"`
}

func imageDataFrom(img *engine.Image) ImageData {
	width, height := img.Size()
	pixels := img.Pixels()
	rows := make([][]int, height)
	for y := range rows {
		row := make([]int, width)
		for x := range row {
			row[x] = int(pixels[y*width+x])
		}
		rows[y] = row
	}
	return ImageData{
		Width:  width,
		Height: height,
		Data:   gridpack.Pack(rows),
	}
}

func (d ImageData) toImage() (*engine.Image, error) {
	rows, err := gridpack.Unpack(d.Data, d.Height, d.Width)
	if err != nil {
		return nil, fmt.Errorf("pixel grid: %w", err)
	}
	pixels := make([]engine.ColorIndex, 0, d.Width*d.Height)
	for y, row := range rows {
		for x, v := range row {
			if v < 0 || v > engine.MaxColorIndex {
				return nil, fmt.Errorf("pixel (%d, %d) value %d out of range 0..%d", x, y, v, engine.MaxColorIndex)
			}
			pixels = append(pixels, engine.ColorIndex(v))
		}
	}
	img := engine.NewImage(d.Width, d.Height)
	img.SetPixels(pixels)
	return img, nil
}
