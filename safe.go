package buddy

import "sync"

// SafeAllocator is a mutex-guarded wrapper around Allocator for callers
// that need concurrent access. The core is explicitly single-threaded
// (see the package doc); wrapping it in a lock is the "higher layer's"
// concern, and this is that higher layer.
type SafeAllocator struct {
	mu sync.Mutex
	a  *Allocator
}

// NewSafe initializes a thread-safe allocator with an arena of at least
// size usable bytes, obtained from source (DefaultSource if nil).
func NewSafe(size uint64, source Source) (*SafeAllocator, error) {
	a, err := Init(size, source)
	if err != nil {
		return nil, err
	}
	return &SafeAllocator{a: a}, nil
}

// Malloc thread-safely serves a request of r bytes.
func (s *SafeAllocator) Malloc(r int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Malloc(r)
}

// Free thread-safely returns b to the allocator.
func (s *SafeAllocator) Free(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(b)
}

// Deinit thread-safely releases the underlying arena.
func (s *SafeAllocator) Deinit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Deinit()
}

// Stats thread-safely returns a snapshot of the allocator's bookkeeping.
func (s *SafeAllocator) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Stats()
}

// Base thread-safely returns the arena's backing storage.
func (s *SafeAllocator) Base() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Base()
}
