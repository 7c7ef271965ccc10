package usecase

import "sync"

// BusyTracker marks sessions with a generation in flight.
type BusyTracker struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewBusyTracker() *BusyTracker {
	return &BusyTracker{active: make(map[string]struct{})}
}

// Acquire marks owner busy. The returned release is safe to call more than once.
func (b *BusyTracker) Acquire(owner string) (release func(), ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, busy := b.active[owner]; busy {
		return func() {}, false
	}
	b.active[owner] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.active, owner)
			b.mu.Unlock()
		})
	}, true
}

func (b *BusyTracker) Busy(owner string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, busy := b.active[owner]
	return busy
}
