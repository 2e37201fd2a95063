package engine

import (
	"slices"
	"sync"
)

// DefaultSoundSpeed is the playback speed of a freshly created sound.
const DefaultSoundSpeed = 30

// SoundState is a plain-value copy of a sound's content. The four sequences
// share one timeline by position; their lengths are not required to match.
type SoundState struct {
	Notes   []int
	Tones   []int
	Volumes []int
	Effects []int
	Speed   int
}

// Clone deep-copies the state so the copy shares no slices with the original.
func (s SoundState) Clone() SoundState {
	return SoundState{
		Notes:   slices.Clone(s.Notes),
		Tones:   slices.Clone(s.Tones),
		Volumes: slices.Clone(s.Volumes),
		Effects: slices.Clone(s.Effects),
		Speed:   s.Speed,
	}
}

// Sound is a mutex-guarded sound effect.
type Sound struct {
	mu    sync.Mutex
	state SoundState
}

// NewSound creates an empty sound at the default speed.
func NewSound() *Sound {
	return &Sound{state: SoundState{Speed: DefaultSoundSpeed}}
}

// State copies the sound content out under its lock.
func (s *Sound) State() SoundState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetState installs new sound content under its lock.
func (s *Sound) SetState(state SoundState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
}
