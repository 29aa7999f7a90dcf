package engine

import "github.com/fenrir-labs/lob/internal/common"

// GetVolumeAtLevel returns the total resting quantity at (price, side).
func (b *Book) GetVolumeAtLevel(price uint16, side common.Side) uint32 {
	return b.store.Volume(price, side)
}

// LookupOrderByID returns the order record for a currently resting id.
func (b *Book) LookupOrderByID(id uint32) (common.Order, error) {
	order, active := b.store.Get(id)
	if !active {
		return common.Order{}, common.ErrNotFound
	}
	return order, nil
}

// OrderExists reports whether id currently refers to a live resting
// order.
func (b *Book) OrderExists(id uint32) bool {
	return b.store.Active(id)
}
