// Package engine is the matching core: Book ties together the order
// store, the per-side price indices and their ring-buffer queues, and
// implements price-time priority matching plus the modify/lookup/volume
// operations.
package engine

// Configuration constants fixed at construction — no runtime resizing,
// everything preallocated up front.
const (
	// MaxOrders bounds the dense id domain [0, MaxOrders).
	MaxOrders = 10_000

	// MaxOrdersPerLevel is the ring capacity of a single price level's
	// time-priority queue.
	MaxOrdersPerLevel = 496

	// MaxPrice bounds the price domain [0, MaxPrice).
	MaxPrice = 8192
)

// StrictMode gates AssertInvariants: when true, a detected violation logs
// an error and panics; when false (the default, production posture)
// AssertInvariants is a no-op on the hot path. Tests set this to true.
var StrictMode = false
