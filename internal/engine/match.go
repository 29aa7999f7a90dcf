package engine

import "github.com/fenrir-labs/lob/internal/common"

// MatchOrder submits a new order for immediate matching against the
// opposite side, resting whatever quantity remains unfilled. It returns
// the number of counter orders touched by a fill (match_count), or 0 if
// the order was rejected outright.
//
// Validation failures (out-of-domain id, an id that is already resting,
// invalid side, out-of-domain price, zero quantity) are never reported
// through the return value — they are logged and MatchOrder returns 0.
// A full resting level is logged too: the unfilled remainder is dropped
// and MatchOrder returns the match count of the fills already made.
func (b *Book) MatchOrder(order common.Order) int {
	if !b.store.InDomain(order.Id) {
		b.log.Error().Err(common.ErrCapacityExceeded).Uint32("order_id", order.Id).Msg("order id out of domain")
		return 0
	}
	if b.store.Active(order.Id) {
		b.log.Error().Uint32("order_id", order.Id).Msg("order id already resting")
		return 0
	}
	if !order.Side.Valid() {
		b.log.Error().Err(common.ErrOutOfDomain).Uint32("order_id", order.Id).Msg("invalid side")
		return 0
	}
	if int(order.Price) >= MaxPrice {
		b.log.Error().Err(common.ErrOutOfDomain).Uint32("order_id", order.Id).Uint16("price", order.Price).Msg("price out of domain")
		return 0
	}
	if order.Quantity == 0 {
		b.log.Error().Uint32("order_id", order.Id).Msg("zero quantity order rejected")
		return 0
	}

	working := order
	counterIdx := b.oppositeIndex(order.Side)
	matchCount := 0

	for working.Quantity > 0 {
		level, bestPrice, ok := counterIdx.Best()
		if !ok || !crosses(order.Side, working.Price, bestPrice) {
			break
		}

		for working.Quantity > 0 && !level.Queue.Empty() {
			counterID := level.Queue.Front()
			counter, active := b.store.Get(counterID)
			if !active {
				// Stale id left by an earlier cancel; skip without
				// counting it as a match.
				level.Queue.PopFront()
				continue
			}

			traded := working.Quantity
			if counter.Quantity < traded {
				traded = counter.Quantity
			}

			working.Quantity -= traded
			counter.Quantity -= traded

			level.Volume -= uint32(traded)
			b.store.AddVolume(bestPrice, counter.Side, -int64(traded))
			matchCount++

			if counter.Quantity == 0 {
				b.store.Deactivate(counter.Id)
				level.Queue.PopFront()
			} else {
				b.store.SetQuantity(counter.Id, counter.Quantity)
			}

			fill := common.Fill{
				AggressorId:   working.Id,
				CounterId:     counter.Id,
				Price:         bestPrice,
				MatchQuantity: traded,
			}
			b.log.Debug().Stringer("fill", fill).Msg("match")
		}

		// Zero volume means only stale ids remain queued: the level is
		// hollow and leaves the index along with an empty one.
		if level.Queue.Empty() || level.Volume == 0 {
			counterIdx.PopBest()
		}
	}

	if working.Quantity > 0 {
		ownIdx := b.indexFor(order.Side)
		level := ownIdx.GetOrCreate(working.Price, MaxOrdersPerLevel)
		if !level.Queue.PushBack(working.Id) {
			b.log.Error().Err(common.ErrCapacityExceeded).Uint32("order_id", working.Id).Msg("price level at capacity")
			return matchCount
		}
		level.Volume += uint32(working.Quantity)
		b.store.AddVolume(working.Price, working.Side, int64(working.Quantity))
		b.store.Put(working)
	}

	return matchCount
}
