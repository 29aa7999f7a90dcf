// Package priceindex maintains, for one side of the book, the set of
// prices currently carrying a non-empty level and answers "best" in O(1).
//
// A dense, direct-addressed array of levels over the full price domain
// [0, MAX_PRICE) gives O(1) handle lookup by price; a companion ordered
// set of active prices, a github.com/tidwall/btree.BTreeG holding bare
// prices, gives O(1) best-price lookup and O(log n) insert/remove.
package priceindex

import (
	"github.com/fenrir-labs/lob/internal/ring"
	"github.com/tidwall/btree"
)

// Level is the per-(side, price) pair: live volume and its time-priority
// queue of resting order ids.
type Level struct {
	Volume uint32
	Queue  *ring.Queue
}

// Index is one side's price-level index: a dense array for O(1) handle
// lookup plus a B-tree of active prices for O(1) best / O(log n) insert.
type Index struct {
	levels []*Level
	active *btree.BTreeG[uint16]
}

// New builds an index over price domain [0, maxPrice). descending
// selects buy-side ordering (best = highest price); ascending (false)
// selects sell-side ordering (best = lowest price).
func New(maxPrice int, descending bool) *Index {
	var less func(a, b uint16) bool
	if descending {
		less = func(a, b uint16) bool { return a > b }
	} else {
		less = func(a, b uint16) bool { return a < b }
	}
	return &Index{
		levels: make([]*Level, maxPrice),
		active: btree.NewBTreeG(less),
	}
}

// Best returns the level and price with priority, or ok=false if the
// side is empty.
func (idx *Index) Best() (level *Level, price uint16, ok bool) {
	p, ok := idx.active.Min()
	if !ok {
		return nil, 0, false
	}
	return idx.levels[p], p, true
}

// PopBest removes the best price's entry from the index. The caller is
// responsible for having already drained the level's queue; PopBest does
// not check.
func (idx *Index) PopBest() {
	if p, ok := idx.active.Min(); ok {
		idx.Remove(p)
	}
}

// Remove takes price out of the active set. Idempotent if price was not
// active.
func (idx *Index) Remove(price uint16) {
	idx.active.Delete(price)
	idx.levels[price] = nil
}

// GetOrCreate returns the level handle for price, allocating and
// registering a fresh one (via queueCapacity) if this price was not
// already active. Idempotent: calling it again for an already-active
// price just returns the existing handle.
func (idx *Index) GetOrCreate(price uint16, queueCapacity int) *Level {
	if lvl := idx.levels[price]; lvl != nil {
		return lvl
	}
	lvl := &Level{Queue: ring.New(queueCapacity)}
	idx.levels[price] = lvl
	idx.active.Set(price)
	return lvl
}

// Get returns the level handle for price if it is currently active.
func (idx *Index) Get(price uint16) (*Level, bool) {
	lvl := idx.levels[price]
	return lvl, lvl != nil
}

// Empty reports whether no price on this side carries a level.
func (idx *Index) Empty() bool {
	return idx.active.Len() == 0
}

// ActivePrices returns the currently active prices in priority order,
// best first. Correctness-path only (debug assertions, tests).
func (idx *Index) ActivePrices() []uint16 {
	prices := make([]uint16, 0, idx.active.Len())
	idx.active.Scan(func(p uint16) bool {
		prices = append(prices, p)
		return true
	})
	return prices
}
