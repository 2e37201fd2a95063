// Package engine holds the runtime resource model: mutex-guarded resource
// instances collected into lock-protected pools. The persistence layer reads
// pools under lock to build snapshots and replaces them wholesale when
// applying one; nothing here touches rendering or audio playback.
package engine

import (
	"fmt"

	"github.com/pixenlabs/pixen/internal/config"
)

// Engine aggregates the seven resource pools a project is made of.
type Engine struct {
	Colors    *Pool[Rgb24]
	Images    *Pool[*Image]
	Tilemaps  *Pool[*Tilemap]
	Channels  *Pool[*Channel]
	Sounds    *Pool[*Sound]
	Musics    *Pool[*Music]
	Waveforms *Pool[*Waveform]
}

// New builds an engine with the banks described by cfg. Palette entries are
// parsed from their 6-hex-digit form; a malformed entry is an error.
func New(cfg config.Config) (*Engine, error) {
	colors := make([]Rgb24, len(cfg.Palette))
	for i, hex := range cfg.Palette {
		c, err := ParseRgb24(hex)
		if err != nil {
			return nil, fmt.Errorf("engine: palette entry %d: %w", i, err)
		}
		colors[i] = c
	}

	images := make([]*Image, cfg.Images.Count)
	for i := range images {
		images[i] = NewImage(cfg.Images.Width, cfg.Images.Height)
	}
	tilemaps := make([]*Tilemap, cfg.Tilemaps.Count)
	for i := range tilemaps {
		tilemaps[i] = NewTilemap(cfg.Tilemaps.Width, cfg.Tilemaps.Height, ImageIndex(0))
	}
	channels := make([]*Channel, cfg.Channels)
	for i := range channels {
		channels[i] = NewChannel()
	}
	sounds := make([]*Sound, cfg.Sounds)
	for i := range sounds {
		sounds[i] = NewSound()
	}
	musics := make([]*Music, cfg.Musics)
	for i := range musics {
		musics[i] = NewMusic()
	}
	waveforms := make([]*Waveform, cfg.Waveforms)
	for i := range waveforms {
		waveforms[i] = NewWaveform()
	}

	return &Engine{
		Colors:    NewPool(colors),
		Images:    NewPool(images),
		Tilemaps:  NewPool(tilemaps),
		Channels:  NewPool(channels),
		Sounds:    NewPool(sounds),
		Musics:    NewPool(musics),
		Waveforms: NewPool(waveforms),
	}, nil
}
