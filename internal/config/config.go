// Package config defines the engine shape: how many banks of each resource
// category an engine starts with, their dimensions, and the default palette.
package config

// Config describes the resource banks a fresh engine is built with.
type Config struct {
	Images    ImageBanks   `yaml:"images"`
	Tilemaps  TilemapBanks `yaml:"tilemaps"`
	Channels  int          `yaml:"channels"`
	Sounds    int          `yaml:"sounds"`
	Musics    int          `yaml:"musics"`
	Waveforms int          `yaml:"waveforms"`
	Palette   []string     `yaml:"palette"` // 6-hex-digit colors, order is the palette index
}

// ImageBanks describes the image bank count and per-bank dimensions.
type ImageBanks struct {
	Count  int `yaml:"count"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TilemapBanks describes the tilemap bank count and per-bank dimensions.
type TilemapBanks struct {
	Count  int `yaml:"count"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
