package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultConfig returns the built-in engine shape.
func DefaultConfig() Config {
	return Config{
		Images:    ImageBanks{Count: 3, Width: 256, Height: 256},
		Tilemaps:  TilemapBanks{Count: 8, Width: 256, Height: 256},
		Channels:  4,
		Sounds:    64,
		Musics:    64,
		Waveforms: 4,
		Palette: []string{
			"000000", "2B335F", "7E2072", "19959C",
			"8B4852", "395C98", "A9C1FF", "EEEEEE",
			"D4186C", "D38441", "E9C35B", "70C6A9",
			"7696DE", "7F7F7F", "9B5F9B", "452E39",
		},
	}
}
