// Package store implements the dense, id-indexed order table and the
// per-(price, side) volume aggregate that back lookup_order_by_id,
// order_exists, and get_volume_at_level.
package store

import "github.com/fenrir-labs/lob/internal/common"

// Store owns every order record. PriceLevels and their queues hold ids
// only; this is the one place the records themselves live.
type Store struct {
	orders   []common.Order
	active   []uint64 // bitset, one bit per id
	maxPrice int

	// vol[price*2 + side] mirrors the PriceLevel.Volume of the
	// corresponding (price, side); Invariant V1.
	vol []uint32
}

// New allocates a store sized for ids in [0, maxOrders) and prices in
// [0, maxPrice).
func New(maxOrders, maxPrice int) *Store {
	return &Store{
		orders:   make([]common.Order, maxOrders),
		active:   make([]uint64, (maxOrders+63)/64),
		maxPrice: maxPrice,
		vol:      make([]uint32, maxPrice*2),
	}
}

// MaxOrders returns the id domain size the store was constructed with.
func (s *Store) MaxOrders() int {
	return len(s.orders)
}

// InDomain reports whether id is within [0, MAX_ORDERS).
func (s *Store) InDomain(id uint32) bool {
	return int(id) < len(s.orders)
}

func (s *Store) bit(id uint32) (word int, mask uint64) {
	return int(id / 64), 1 << (id % 64)
}

// Active reports whether id currently refers to a live resting order.
func (s *Store) Active(id uint32) bool {
	if !s.InDomain(id) {
		return false
	}
	word, mask := s.bit(id)
	return s.active[word]&mask != 0
}

func (s *Store) setActive(id uint32) {
	word, mask := s.bit(id)
	s.active[word] |= mask
}

func (s *Store) clearActive(id uint32) {
	word, mask := s.bit(id)
	s.active[word] &^= mask
}

// Get returns the order record for id and whether it is active. The
// record is returned even when inactive (stale data from its last
// resting lifetime); callers must check the bool.
func (s *Store) Get(id uint32) (common.Order, bool) {
	if !s.InDomain(id) {
		return common.Order{}, false
	}
	return s.orders[id], s.Active(id)
}

// Put records order as a live resting entry.
func (s *Store) Put(order common.Order) {
	s.orders[order.Id] = order
	s.setActive(order.Id)
}

// SetQuantity updates the quantity of a currently-active order in place,
// preserving Id, Price and Side.
func (s *Store) SetQuantity(id uint32, quantity uint16) {
	s.orders[id].Quantity = quantity
}

// Deactivate clears active[id]; the order record itself is left in place
// (stale) until the id is reused by a future Put.
func (s *Store) Deactivate(id uint32) {
	s.clearActive(id)
}

// volIndex maps (price, side) onto vol's flat layout, branching on the
// side explicitly rather than trusting it to already be 0 or 1 — a
// side value decoded straight off the wire is not guaranteed to be.
func (s *Store) volIndex(price uint16, side common.Side) (int, bool) {
	if int(price) >= s.maxPrice {
		return 0, false
	}
	if side == common.Buy {
		return int(price) * 2, true
	}
	return int(price)*2 + 1, true
}

// Volume returns vol[price][side], zero if price is out of domain.
func (s *Store) Volume(price uint16, side common.Side) uint32 {
	idx, ok := s.volIndex(price, side)
	if !ok {
		return 0
	}
	return s.vol[idx]
}

// AddVolume applies a signed delta to vol[price][side]. delta is
// expressed as int64 so callers can pass a negative debit without
// wrapping an unsigned subtraction. A price out of domain is a no-op.
func (s *Store) AddVolume(price uint16, side common.Side, delta int64) {
	idx, ok := s.volIndex(price, side)
	if !ok {
		return
	}
	s.vol[idx] = uint32(int64(s.vol[idx]) + delta)
}
