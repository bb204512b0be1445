// Package dedupe tracks which sessions have already been scored, so a
// submitted arrangement is evaluated at most once.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records scored session ids.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an id from the seen set. Used when a submission was
	// marked seen but failed validation, so a corrected resubmission of the
	// same session can still be scored.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

// inMemoryDeduper is a bounded seen-set with FIFO eviction. Active sessions
// are already capacity-bounded upstream, so the ring only has to outlive
// late duplicate submissions, not hold history forever.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	ring    []string
	next    int
	maxSize int
}

const defaultMaxSize = 50000

// NewInMemoryDeduper creates an in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{}, d.maxSize)
	d.ring = make([]string, d.maxSize)
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}

	// Overwrite the oldest slot once the ring wraps.
	if old := d.ring[d.next]; old != "" {
		delete(d.seen, old)
	}
	d.ring[d.next] = id
	d.next = (d.next + 1) % d.maxSize
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; !ok {
		return
	}
	delete(d.seen, id)
	for i, v := range d.ring {
		if v == id {
			d.ring[i] = ""
			break
		}
	}
}

func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
