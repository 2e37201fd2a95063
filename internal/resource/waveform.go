package resource

import (
	"fmt"

	"github.com/pixenlabs/pixen/internal/engine"
)

// WaveformData is the serializable form of a waveform. The noise selector
// is persisted as its integer index; the amplitude table has the engine's
// fixed resolution.
type WaveformData struct {
	Gain  float64   `yaml:"gain"`
	Noise int       `yaml:"noise"`
	Table []float64 `yaml:"table"`
}

func waveformDataFrom(wav *engine.Waveform) WaveformData {
	state := wav.State()
	return WaveformData{
		Gain:  state.Gain,
		Noise: state.Noise.Index(),
		Table: state.Table[:],
	}
}

func (d WaveformData) toWaveform() (*engine.Waveform, error) {
	noise, err := engine.NoiseFromIndex(d.Noise)
	if err != nil {
		return nil, err
	}
	if len(d.Table) != engine.WaveformResolution {
		return nil, fmt.Errorf("table has %d entries, want %d", len(d.Table), engine.WaveformResolution)
	}
	state := engine.WaveformState{Gain: d.Gain, Noise: noise}
	copy(state.Table[:], d.Table)
	wav := engine.NewWaveform()
	wav.SetState(state)
	return wav, nil
}
