package resource

import (
	"fmt"

	"github.com/pixenlabs/pixen/internal/engine"
	"github.com/pixenlabs/pixen/internal/gridpack"
)

// TilemapData is the serializable form of a tilemap. Each stored row holds
// 2×width scalars because every cell is an interleaved (tile-x, tile-y)
// pair. Only an image-pool index survives as the source reference.
type TilemapData struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	ImgSrc int     `yaml:"imgsrc"`
	Data   [][]int `yaml:"data"`
}

func tilemapDataFrom(tm *engine.Tilemap) TilemapData {
	width, height := tm.Size()

	// An embedded image source has no pool index; it flattens to bank 0,
	// matching the original format.
	imgsrc := 0
	if idx, ok := tm.Source().(engine.ImageIndex); ok {
		imgsrc = int(idx)
	}

	tiles := tm.Tiles()
	rows := make([][]int, height)
	for y := range rows {
		row := make([]int, 0, width*2)
		for x := 0; x < width; x++ {
			tile := tiles[y*width+x]
			row = append(row, tile.X, tile.Y)
		}
		rows[y] = row
	}
	return TilemapData{
		Width:  width,
		Height: height,
		ImgSrc: imgsrc,
		Data:   gridpack.Pack(rows),
	}
}

func (d TilemapData) toTilemap() (*engine.Tilemap, error) {
	rows, err := gridpack.Unpack(d.Data, d.Height, d.Width*2)
	if err != nil {
		return nil, fmt.Errorf("tile grid: %w", err)
	}
	tiles := make([]engine.Tile, 0, d.Width*d.Height)
	for y, row := range rows {
		for i, v := range row {
			if v < 0 || v > engine.MaxTileCoord {
				return nil, fmt.Errorf("tile (%d, %d) coordinate %d out of range 0..%d", i/2, y, v, engine.MaxTileCoord)
			}
		}
		for i := 0; i < len(row); i += 2 {
			tiles = append(tiles, engine.Tile{X: row[i], Y: row[i+1]})
		}
	}
	tm := engine.NewTilemap(d.Width, d.Height, engine.ImageIndex(d.ImgSrc))
	tm.SetTiles(tiles)
	return tm, nil
}
