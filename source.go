package buddy

// Source supplies and reclaims the raw contiguous byte region the
// allocator manages as its arena, kept as an external collaborator
// rather than folded into the allocator's own scope: the allocator calls
// Obtain exactly once, at Init, and Release exactly once, at Deinit.
type Source interface {
	// Obtain returns a slice of exactly n contiguous bytes, or an error
	// if no such region is available.
	Obtain(n int) ([]byte, error)
	// Release returns a region previously obtained from this Source.
	Release(b []byte) error
}

// heapSource is a Source backed by the Go heap. It needs no OS
// privileges, which makes it the portable default and the right choice
// under test: the arena's address is stable for the slice's lifetime
// because the Allocator keeps it referenced, so the runtime's
// non-moving collector never relocates it out from under in-flight
// unsafe.Pointer arithmetic.
type heapSource struct{}

func (heapSource) Obtain(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (heapSource) Release([]byte) error {
	return nil
}

// DefaultSource is used by New and by Init when no Source is supplied.
var DefaultSource Source = heapSource{}
