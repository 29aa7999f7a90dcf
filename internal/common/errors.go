package common

import "errors"

var (
	// ErrNotFound is returned by LookupOrderByID for an inactive id.
	ErrNotFound = errors.New("order not found")

	// ErrCapacityExceeded covers both an id beyond the store's id domain
	// and a price level whose resting queue is already full. Hot-path
	// callers log it and drop the operation; they never propagate it as
	// a return value.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrOutOfDomain covers a price outside the book's configured price
	// range, or a side byte that is neither Buy nor Sell. Hot-path
	// callers log it and drop the operation.
	ErrOutOfDomain = errors.New("value out of domain")
)
