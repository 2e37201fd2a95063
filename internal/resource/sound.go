package resource

import "github.com/pixenlabs/pixen/internal/engine"

// SoundData is the serializable form of a sound effect. The four sequences
// are copied verbatim; positional alignment between them is the runtime's
// business, not checked here.
type SoundData struct {
	Notes   []int `yaml:"notes"`
	Tones   []int `yaml:"tones"`
	Volumes []int `yaml:"volumes"`
	Effects []int `yaml:"effects"`
	Speed   int   `yaml:"speed"`
}

func soundDataFrom(snd *engine.Sound) SoundData {
	state := snd.State()
	return SoundData{
		Notes:   state.Notes,
		Tones:   state.Tones,
		Volumes: state.Volumes,
		Effects: state.Effects,
		Speed:   state.Speed,
	}
}

func (d SoundData) toSound() *engine.Sound {
	snd := engine.NewSound()
	snd.SetState(engine.SoundState{
		Notes:   d.Notes,
		Tones:   d.Tones,
		Volumes: d.Volumes,
		Effects: d.Effects,
		Speed:   d.Speed,
	})
	return snd
}
