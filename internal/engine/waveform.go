package engine

import (
	"fmt"
	"sync"
)

// WaveformResolution is the fixed number of amplitude steps in a waveform
// table.
const WaveformResolution = 32

// WaveformTable is a fixed-size amplitude table.
type WaveformTable [WaveformResolution]float64

// Noise selects the noise generator mixed into a waveform.
type Noise int

const (
	NoiseOff Noise = iota
	NoiseShortPeriod
	NoiseLongPeriod

	noiseCount
)

// Index returns the noise selector's persistent integer form.
func (n Noise) Index() int {
	return int(n)
}

// NoiseFromIndex maps a persisted integer back to a noise selector.
// An index outside the known range is an error.
func NoiseFromIndex(i int) (Noise, error) {
	if i < 0 || i >= int(noiseCount) {
		return NoiseOff, fmt.Errorf("engine: unknown noise index %d", i)
	}
	return Noise(i), nil
}

// WaveformState is a plain-value copy of a waveform's content.
type WaveformState struct {
	Gain  float64
	Noise Noise
	Table WaveformTable
}

// Waveform is a mutex-guarded oscillator waveform.
type Waveform struct {
	mu    sync.Mutex
	state WaveformState
}

// NewWaveform creates a waveform with unit gain, noise off, and a zeroed
// table.
func NewWaveform() *Waveform {
	return &Waveform{state: WaveformState{Gain: 1.0}}
}

// State copies the waveform content out under its lock.
func (w *Waveform) State() WaveformState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SetState installs new waveform content under its lock.
func (w *Waveform) SetState(s WaveformState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = s
}
