// Package resource converts the engine's live resource pools to and from a
// versioned YAML snapshot. Snapshots are plain values: capturing copies data
// out under each resource's lock, applying replaces whole pools, and nothing
// in between shares memory with the runtime.
package resource

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pixenlabs/pixen/internal/engine"
)

// FormatVersion is stamped into every captured snapshot. It is read back on
// parse but not validated here; compatibility enforcement belongs to the
// caller.
const FormatVersion = 1

// ResourceData is the flat, serializable form of all resource categories at
// a point in time.
type ResourceData struct {
	FormatVersion int            `yaml:"format_version"`
	Colors        []string       `yaml:"colors"`
	Images        []ImageData    `yaml:"images"`
	Tilemaps      []TilemapData  `yaml:"tilemaps"`
	Channels      []ChannelData  `yaml:"channels"`
	Sounds        []SoundData    `yaml:"sounds"`
	Musics        []MusicData    `yaml:"musics"`
	Waveforms     []WaveformData `yaml:"waveforms"`
}

// Filter selects which categories an Apply or Render call touches. Images,
// tilemaps, sounds, and musics are primary content and included unless
// excluded; colors, channels, and waveforms are tunable settings and
// excluded unless included. The same filter expresses the same selection in
// both directions.
type Filter struct {
	ExcludeImages    bool
	ExcludeTilemaps  bool
	ExcludeSounds    bool
	ExcludeMusics    bool
	IncludeColors    bool
	IncludeChannels  bool
	IncludeWaveforms bool
}

// Parse deserializes a snapshot text blob. Any structural or type mismatch
// fails the whole call; there is no partial result.
func Parse(text string) (*ResourceData, error) {
	var rd ResourceData
	if err := yaml.Unmarshal([]byte(text), &rd); err != nil {
		return nil, fmt.Errorf("resource: parse snapshot: %w", err)
	}
	return &rd, nil
}

// Capture copies every resource pool into a fresh snapshot stamped with the
// current format version. Pools are read one at a time; each element's data
// is copied out under its own lock.
func Capture(eng *engine.Engine) *ResourceData {
	rd := &ResourceData{FormatVersion: FormatVersion}
	for _, color := range eng.Colors.Items() {
		rd.Colors = append(rd.Colors, engine.FormatRgb24(color))
	}
	for _, img := range eng.Images.Items() {
		rd.Images = append(rd.Images, imageDataFrom(img))
	}
	for _, tm := range eng.Tilemaps.Items() {
		rd.Tilemaps = append(rd.Tilemaps, tilemapDataFrom(tm))
	}
	for _, ch := range eng.Channels.Items() {
		rd.Channels = append(rd.Channels, channelDataFrom(ch))
	}
	for _, snd := range eng.Sounds.Items() {
		rd.Sounds = append(rd.Sounds, soundDataFrom(snd))
	}
	for _, mus := range eng.Musics.Items() {
		rd.Musics = append(rd.Musics, musicDataFrom(mus))
	}
	for _, wav := range eng.Waveforms.Items() {
		rd.Waveforms = append(rd.Waveforms, waveformDataFrom(wav))
	}
	return rd
}

// Apply replaces the engine pools selected by the filter with fresh
// resources built from the snapshot. A category is only touched when the
// filter selects it and the snapshot carries at least one entry for it.
// Every category is decoded before any pool is replaced, so a decode error
// leaves the engine exactly as it was; each replacement then happens under
// a single pool lock acquisition.
func (rd *ResourceData) Apply(eng *engine.Engine, f Filter) error {
	var colors []engine.Rgb24
	if f.IncludeColors && len(rd.Colors) > 0 {
		colors = make([]engine.Rgb24, len(rd.Colors))
		for i, hex := range rd.Colors {
			c, err := engine.ParseRgb24(hex)
			if err != nil {
				return fmt.Errorf("resource: color %d: %w", i, err)
			}
			colors[i] = c
		}
	}

	var images []*engine.Image
	if !f.ExcludeImages && len(rd.Images) > 0 {
		images = make([]*engine.Image, len(rd.Images))
		for i, data := range rd.Images {
			img, err := data.toImage()
			if err != nil {
				return fmt.Errorf("resource: image %d: %w", i, err)
			}
			images[i] = img
		}
	}

	var tilemaps []*engine.Tilemap
	if !f.ExcludeTilemaps && len(rd.Tilemaps) > 0 {
		tilemaps = make([]*engine.Tilemap, len(rd.Tilemaps))
		for i, data := range rd.Tilemaps {
			tm, err := data.toTilemap()
			if err != nil {
				return fmt.Errorf("resource: tilemap %d: %w", i, err)
			}
			tilemaps[i] = tm
		}
	}

	var channels []*engine.Channel
	if f.IncludeChannels && len(rd.Channels) > 0 {
		channels = make([]*engine.Channel, len(rd.Channels))
		for i, data := range rd.Channels {
			channels[i] = data.toChannel()
		}
	}

	var sounds []*engine.Sound
	if !f.ExcludeSounds && len(rd.Sounds) > 0 {
		sounds = make([]*engine.Sound, len(rd.Sounds))
		for i, data := range rd.Sounds {
			sounds[i] = data.toSound()
		}
	}

	var musics []*engine.Music
	if !f.ExcludeMusics && len(rd.Musics) > 0 {
		musics = make([]*engine.Music, len(rd.Musics))
		for i, data := range rd.Musics {
			musics[i] = data.toMusic()
		}
	}

	var waveforms []*engine.Waveform
	if f.IncludeWaveforms && len(rd.Waveforms) > 0 {
		waveforms = make([]*engine.Waveform, len(rd.Waveforms))
		for i, data := range rd.Waveforms {
			wav, err := data.toWaveform()
			if err != nil {
				return fmt.Errorf("resource: waveform %d: %w", i, err)
			}
			waveforms[i] = wav
		}
	}

	if colors != nil {
		eng.Colors.Replace(colors)
	}
	if images != nil {
		eng.Images.Replace(images)
	}
	if tilemaps != nil {
		eng.Tilemaps.Replace(tilemaps)
	}
	if channels != nil {
		eng.Channels.Replace(channels)
	}
	if sounds != nil {
		eng.Sounds.Replace(sounds)
	}
	if musics != nil {
		eng.Musics.Replace(musics)
	}
	if waveforms != nil {
		eng.Waveforms.Replace(waveforms)
	}
	return nil
}

// Render serializes the snapshot, keeping only the categories the filter
// selects. It works on a transient copy; the receiver is left untouched.
func (rd *ResourceData) Render(f Filter) (string, error) {
	out := *rd
	if !f.IncludeColors {
		out.Colors = nil
	}
	if f.ExcludeImages {
		out.Images = nil
	}
	if f.ExcludeTilemaps {
		out.Tilemaps = nil
	}
	if !f.IncludeChannels {
		out.Channels = nil
	}
	if f.ExcludeSounds {
		out.Sounds = nil
	}
	if f.ExcludeMusics {
		out.Musics = nil
	}
	if !f.IncludeWaveforms {
		out.Waveforms = nil
	}
	text, err := yaml.Marshal(&out)
	if err != nil {
		return "", fmt.Errorf("resource: render snapshot: %w", err)
	}
	return string(text), nil
}
