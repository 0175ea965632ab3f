// Package buddy implements a binary buddy memory allocator over a single
// pre-reserved contiguous byte region (the arena). Every request is
// rounded up to a power of two and served by a block of that size;
// larger free blocks are split into equal halves ("buddies") on demand,
// and adjacent free buddies are recursively coalesced on release.
//
// The allocator instance is single-threaded: it holds no internal
// synchronization, and every public method runs to completion without
// blocking. Callers that need concurrent access should wrap an Allocator
// in a SafeAllocator (or their own mutex) rather than sharing one bare
// instance across goroutines.
package buddy

import "unsafe"

const (
	// MinOrder is the smallest block order: 1<<MinOrder = 16 bytes, the
	// minimum size that can carry a free-list node's two pointers.
	MinOrder = 4
	// MaxOrder is the largest supported block order: 1<<MaxOrder = 4 GiB.
	MaxOrder = 32
	// HeaderBytes is the per-allocation overhead: one machine word
	// holding the liveness bit and order of an allocated block.
	HeaderBytes = 8
)

// Debug gates internal invariant assertions that the reference
// implementation this package is modeled on runs unconditionally. Leave
// false in production; enable in tests that want to catch a broken
// free-list invariant as a panic rather than silent corruption.
var Debug = false

// Allocator owns one arena and the per-order free-list bank over it. Its
// zero value is not usable; construct with New or Init.
type Allocator struct {
	source   Source
	arena    []byte
	base     uintptr
	size     uint64
	maxOrder uint

	bank [MaxOrder + 1]*node
	occ  occupancy

	nallocs int
}

// New initializes an allocator with an arena of at least size usable
// bytes, using DefaultSource to obtain the backing memory.
func New(size uint64) (*Allocator, error) {
	return Init(size, DefaultSource)
}

// Init initializes an allocator with an arena of at least size usable
// bytes, obtained from source. S = next power of two >= size+HeaderBytes
// is computed first; S must land in [1<<MinOrder, 1<<MaxOrder] or
// ErrConfigInvalid is returned.
func Init(size uint64, source Source) (*Allocator, error) {
	if source == nil {
		source = DefaultSource
	}

	need := size + HeaderBytes
	if need < size { // overflow
		return nil, ErrConfigInvalid
	}
	order := rawOrderFor(need)
	if order < MinOrder || order > MaxOrder {
		return nil, ErrConfigInvalid
	}

	total := uint64(1) << order
	arena, err := source.Obtain(int(total))
	if err != nil {
		return nil, ErrSourceFailed
	}
	if uint64(len(arena)) != total {
		return nil, ErrSourceFailed
	}
	clear(arena)

	a := &Allocator{
		source:   source,
		arena:    arena,
		base:     uintptr(unsafe.Pointer(&arena[0])),
		size:     total,
		maxOrder: order,
	}
	a.occ.init(total, MinOrder, order)

	root := a.nodeAt(0)
	root.prev, root.next = nil, nil
	a.bank[order] = root
	a.occ.set(order, 0)

	return a, nil
}

// Deinit releases the arena back to its Source. The Allocator must not
// be used afterwards; Malloc and Free check for a deinitialized instance
// and panic if called on one.
func (a *Allocator) Deinit() error {
	err := a.source.Release(a.arena)
	a.arena = nil
	a.base = 0
	for i := range a.bank {
		a.bank[i] = nil
	}
	return err
}

// Base returns the arena's backing storage, primarily useful for
// debugging and tests.
func (a *Allocator) Base() []byte {
	return a.arena
}

// Size returns the arena's total size in bytes (a power of two).
func (a *Allocator) Size() uint64 {
	return a.size
}

func (a *Allocator) offsetOf(p unsafe.Pointer) uintptr {
	return uintptr(p) - a.base
}

func (a *Allocator) addrAt(off uintptr) unsafe.Pointer {
	return unsafe.Pointer(&a.arena[off])
}

func (a *Allocator) nodeAt(off uintptr) *node {
	return (*node)(a.addrAt(off))
}

// Malloc serves a request of r bytes with a block of at least r usable
// bytes, splitting larger free blocks as needed. It returns
// ErrCapacityExceeded if r cannot fit in any block the arena could ever
// produce, and ErrOutOfMemory if no block of a sufficient order is
// currently free (genuine exhaustion and order-level fragmentation are
// not distinguished; see Stats for the data needed to tell them apart).
func (a *Allocator) Malloc(r int) ([]byte, error) {
	if a.arena == nil {
		panic("buddy: Malloc called after Deinit")
	}

	order := sizeForRequest(r)
	if order > a.maxOrder {
		return nil, ErrCapacityExceeded
	}

	p := order
	for p <= a.maxOrder && a.bank[p] == nil {
		p++
	}
	if p > a.maxOrder {
		return nil, ErrOutOfMemory
	}
	a.splitCascade(p, order)

	blk := a.detachOrder(order)
	off := a.offsetOf(unsafe.Pointer(blk))
	markAllocated(a.headerAt(off), order)
	a.nallocs++

	if r < 0 {
		r = 0
	}
	start := off + HeaderBytes
	end := off + (uintptr(1) << order)
	return a.arena[start : start+uintptr(r) : end], nil
}

// splitCascade repeatedly halves the head block of bank[from] down to
// bank[to+1], threading both halves of each split onto the next lower
// order's free list, until bank[to] is guaranteed non-empty.
func (a *Allocator) splitCascade(from, to uint) {
	for order := from; order > to; order-- {
		first := a.detachOrder(order)
		firstOff := a.offsetOf(unsafe.Pointer(first))
		secondOff := firstOff ^ (uintptr(1) << (order - 1))
		second := a.nodeAt(secondOff)

		a.insertOrder(order-1, first)
		a.insertOrder(order-1, second)
	}
}

// Free returns a block previously obtained from Malloc on this allocator
// to the free-list bank, then recursively coalesces it with its buddy for
// as long as the buddy is also free as a whole block of the same order.
// Behavior is undefined if b was not returned by Malloc on this
// allocator, or was already freed.
func (a *Allocator) Free(b []byte) {
	if a.arena == nil {
		panic("buddy: Free called after Deinit")
	}
	if cap(b) == 0 {
		return
	}

	off := a.offsetOf(unsafe.Pointer(unsafe.SliceData(b))) - HeaderBytes
	order := headerOrder(a.headerAt(off))

	n := a.nodeAt(off)
	a.insertOrder(order, n)
	a.nallocs--

	a.coalesce(off, order)
}

// coalesce merges the block at off, of the given order, with its buddy
// for as long as the buddy is free as a whole block of the same order,
// climbing one order each time until it reaches the arena's own order or
// finds a buddy that cannot be merged.
func (a *Allocator) coalesce(off uintptr, order uint) {
	for order < a.maxOrder {
		buddyOff := off ^ (uintptr(1) << order)
		if isAllocated(a.headerAt(buddyOff)) {
			return
		}
		if !a.occ.isSet(order, uint64(buddyOff>>order)) {
			// The buddy's first word reads as a free-list node, but it
			// is not itself present as a whole block of this order — it
			// was split further and only part of it is free. Stop
			// rather than incorrectly merging a partial buddy.
			return
		}

		a.spliceOrder(order, a.nodeAt(buddyOff))
		a.spliceOrder(order, a.nodeAt(off))

		merged := off
		if buddyOff < off {
			merged = buddyOff
		}
		order++

		m := a.nodeAt(merged)
		a.insertOrder(order, m)
		off = merged
	}
}
