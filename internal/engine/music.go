package engine

import (
	"slices"
	"sync"
)

// Sequence is an independently mutex-guarded list of sound indices.
// Each sequence inside a music stays independently mutable at runtime,
// so it owns its lock rather than borrowing the music's.
type Sequence struct {
	mu    sync.Mutex
	items []int
}

// NewSequence creates a sequence owning a copy of the given sound indices.
func NewSequence(items []int) *Sequence {
	return &Sequence{items: slices.Clone(items)}
}

// Items returns a copy of the sequence's sound indices.
func (s *Sequence) Items() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// SetItems replaces the sequence's sound indices.
func (s *Sequence) SetItems(items []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
}

// Music is a mutex-guarded list of sequences. The music lock guards the
// list structure; each sequence guards its own content.
type Music struct {
	mu   sync.Mutex
	seqs []*Sequence
}

// NewMusic creates a music with no sequences.
func NewMusic() *Music {
	return &Music{}
}

// Sequences returns a copy of the sequence list. The sequences themselves
// are shared.
func (m *Music) Sequences() []*Sequence {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.seqs)
}

// SetSequences replaces the sequence list.
func (m *Music) SetSequences(seqs []*Sequence) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seqs = seqs
}
