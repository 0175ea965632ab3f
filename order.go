package buddy

import "modernc.org/mathutil"

// minBlockSize is the smallest block the allocator will ever hand a
// free-list node: two machine words (16 bytes on 64-bit), per MinOrder.
const minBlockSize = uint64(1) << MinOrder

// rawOrderFor returns the smallest order o such that 1<<o >= n, with no
// floor at MinOrder: ceil(log2(n)) equals BitLen(n-1) for n >= 1.
func rawOrderFor(n uint64) uint {
	if n <= 1 {
		return 0
	}
	return uint(mathutil.BitLenUint64(n - 1))
}

// orderFor returns the smallest order o such that 1<<o >= n, clamped
// below by MinOrder.
func orderFor(n uint64) uint {
	if o := rawOrderFor(n); o > MinOrder {
		return o
	}
	return MinOrder
}

// sizeForRequest computes the order that services a user allocation
// request of r bytes: ceil(log2(max(r, 16) + 8)). r is clamped up to the
// minimum usable payload before the header cost is added, not after, so a
// request of 8 bytes or fewer still gets the header it needs.
func sizeForRequest(r int) uint {
	if r < 0 {
		r = 0
	}
	payload := uint64(r)
	if payload < minBlockSize {
		payload = minBlockSize
	}
	return orderFor(payload + HeaderBytes)
}
