package buddy

import "unsafe"

// detachOrder removes and returns the head of bank[order]. The caller is
// responsible for the order actually holding a block; in Debug mode an
// empty list is reported as an invariant violation by an explicit panic,
// otherwise detachHead fails on the nil head with a nil-pointer panic.
func (a *Allocator) detachOrder(order uint) *node {
	if Debug && a.bank[order] == nil {
		panic("buddy: detachOrder on empty free list")
	}
	n := detachHead(&a.bank[order])
	a.occ.clear(order, a.blockIndex(n, order))
	return n
}

// spliceOrder removes n from bank[order], wherever in the list it sits.
func (a *Allocator) spliceOrder(order uint, n *node) {
	splice(&a.bank[order], n)
	a.occ.clear(order, a.blockIndex(n, order))
}

// insertOrder inserts n into bank[order]: it becomes the new head if the
// list is empty, otherwise it is attached right after the current head.
func (a *Allocator) insertOrder(order uint, n *node) {
	n.prev, n.next = nil, nil
	if head := a.bank[order]; head == nil {
		a.bank[order] = n
	} else {
		attachAfterHead(head, n)
	}
	a.occ.set(order, a.blockIndex(n, order))
}

func (a *Allocator) blockIndex(n *node, order uint) uint64 {
	return uint64(a.offsetOf(unsafe.Pointer(n)) >> order)
}
