package engine

import (
	"slices"
	"sync"
)

// Pool is a lock-protected ordered collection of one resource category.
// The pool mutex guards the list structure only; each element guards its
// own content. Lock order is always pool first, then element.
type Pool[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewPool creates a pool owning the given element list.
func NewPool[T any](items []T) *Pool[T] {
	return &Pool[T]{items: items}
}

// Items returns a copy of the element list. Elements themselves are shared;
// callers lock each element before touching its content.
func (p *Pool[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.items)
}

// Replace swaps the entire element list under a single lock acquisition,
// so readers observe either the old list or the new one, never a mix.
func (p *Pool[T]) Replace(items []T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}

// Len returns the current number of elements.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Get returns the element at index i, or false if i is out of range.
func (p *Pool[T]) Get(i int) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.items) {
		var zero T
		return zero, false
	}
	return p.items[i], true
}
