package buddy

import "errors"

var (
	// ErrConfigInvalid is returned by Init when the requested arena size
	// falls outside the supported order range [MinOrder, MaxOrder].
	ErrConfigInvalid = errors.New("buddy: arena size outside supported order range")

	// ErrSourceFailed is returned by Init when the external memory
	// source refused to supply the arena.
	ErrSourceFailed = errors.New("buddy: external memory source failed")

	// ErrCapacityExceeded is returned by Malloc when the request is
	// larger than the arena can ever serve, even when completely free.
	ErrCapacityExceeded = errors.New("buddy: requested size exceeds arena capacity")

	// ErrOutOfMemory is returned by Malloc when no free block of a
	// sufficient order is currently available. Genuine exhaustion and
	// order-level fragmentation are not distinguished at this level;
	// callers that need the distinction should consult Stats.
	ErrOutOfMemory = errors.New("buddy: no free block available")
)
