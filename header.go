package buddy

import "unsafe"

// allocatedFlag is bit 63 of a block's first word: set means the block is
// currently handed out to a caller, clear means the first word is instead
// the free-list node's prev pointer (see node in freelist.go).
const allocatedFlag = uint64(1) << 63

// header is the 8-byte prefix written at offset 0 of an allocated block:
// bit 63 set, bits 0..62 the block's order.
type header struct {
	orderAndFlags uint64
}

func (a *Allocator) headerAt(off uintptr) *header {
	return (*header)(unsafe.Pointer(&a.arena[off]))
}

// markAllocated writes the liveness bit and order into a block's header,
// consuming whatever free-list node previously occupied the same bytes.
func markAllocated(h *header, order uint) {
	h.orderAndFlags = uint64(order) | allocatedFlag
}

// isAllocated reports the liveness bit of a block's first word. Called on
// a buddy's header during coalescing: a clear bit means the buddy's first
// word is instead a free-list prev pointer, not a header.
func isAllocated(h *header) bool {
	return h.orderAndFlags&allocatedFlag != 0
}

// headerOrder extracts the order from an allocated block's header. The
// caller must have already confirmed isAllocated.
func headerOrder(h *header) uint {
	return uint(h.orderAndFlags &^ allocatedFlag)
}
