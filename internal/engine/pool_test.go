package engine

import (
	"sync"
	"testing"
)

func TestPoolItemsCopiesList(t *testing.T) {
	p := NewPool([]int{1, 2, 3})

	items := p.Items()
	items[0] = 99

	got, _ := p.Get(0)
	if got != 1 {
		t.Errorf("Get(0) = %d after mutating Items() copy, expected 1", got)
	}
}

func TestPoolReplace(t *testing.T) {
	p := NewPool([]int{1, 2, 3})

	p.Replace([]int{7})
	if p.Len() != 1 {
		t.Errorf("Len() = %d after Replace, expected 1", p.Len())
	}
	if got, ok := p.Get(0); !ok || got != 7 {
		t.Errorf("Get(0) = %d, %v, expected 7, true", got, ok)
	}
}

func TestPoolGetOutOfRange(t *testing.T) {
	p := NewPool([]int{1})

	if _, ok := p.Get(-1); ok {
		t.Error("Get(-1) should report false")
	}
	if _, ok := p.Get(1); ok {
		t.Error("Get(1) should report false")
	}
}

func TestPoolReplaceIsAtomic(t *testing.T) {
	p := NewPool([]int{0, 0, 0, 0})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			p.Replace([]int{i, i, i, i})
		}
	}()

	// Readers must always observe a uniform list, never a mix of two
	// replacements.
	for i := 0; i < 1000; i++ {
		items := p.Items()
		for _, v := range items[1:] {
			if v != items[0] {
				t.Fatalf("observed mixed list %v", items)
			}
		}
	}
	close(stop)
	wg.Wait()
}
