package gol

import "sync"

// workCounter hands out row indices to workers, one at a time, in increasing
// order. Every index in [1, limit) is claimed exactly once per generation.
type workCounter struct {
	mu    sync.Mutex
	next  int
	limit int // One past the last valid row
}

// claim returns the next unclaimed row, or false once all rows are taken.
func (wc *workCounter) claim() (int, bool) {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if wc.next >= wc.limit {
		return 0, false
	}
	row := wc.next
	wc.next++
	return row, true
}

// reset prepares the counter for a new generation. Must not be called while
// workers of the previous generation are still claiming.
func (wc *workCounter) reset(limit int) {
	wc.mu.Lock()
	wc.next = 1
	wc.limit = limit
	wc.mu.Unlock()
}
