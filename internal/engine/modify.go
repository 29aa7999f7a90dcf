package engine

// ModifyOrderByID changes the resting quantity of id to newQuantity. A
// newQuantity of 0 cancels the order. Modifying a price or side is not
// supported — order identity (price, side) is fixed once resting. A
// stale or unknown id is a silent no-op.
//
// Cancellation removal is lazy at the queue level: the id is left in
// place in its ring.Queue and is skipped the next time the drain loop
// reaches it. The price index, by contrast, is updated eagerly — a
// level that hits zero volume is removed from the active-price set
// before ModifyOrderByID returns, so best-price queries never observe
// a hollow level.
func (b *Book) ModifyOrderByID(id uint32, newQuantity uint16) {
	order, active := b.store.Get(id)
	if !active {
		return
	}

	idx := b.indexFor(order.Side)
	level, ok := idx.Get(order.Price)
	if !ok {
		return
	}

	delta := int64(newQuantity) - int64(order.Quantity)
	level.Volume = uint32(int64(level.Volume) + delta)
	b.store.AddVolume(order.Price, order.Side, delta)

	if newQuantity == 0 {
		b.store.Deactivate(id)
	} else {
		b.store.SetQuantity(id, newQuantity)
	}

	if level.Volume == 0 {
		idx.Remove(order.Price)
	}
}
