package engine

import (
	"fmt"

	"github.com/fenrir-labs/lob/internal/common"
	"github.com/fenrir-labs/lob/internal/priceindex"
)

// AssertInvariants walks both sides of the book and panics (after an
// error-level log line) if any cross-check fails. It is a no-op unless
// StrictMode is set, since it re-derives volumes from scratch and is not
// meant to run on the hot path in production.
//
// Checked:
//   - every active price on a side carries Volume > 0 (no hollow levels
//     left in the index);
//   - a level's Volume equals the sum of the still-active order
//     quantities physically present in its queue, and equals the
//     store's own volume aggregate for that (price, side);
//   - every id seen in a queue that is still active in the store
//     reports the same (price, side) the queue holds it under, and is
//     seen exactly once across the whole book.
func (b *Book) AssertInvariants() {
	if !StrictMode {
		return
	}

	seen := make(map[uint32]bool)

	b.checkSide(b.buy, common.Buy, seen)
	b.checkSide(b.sell, common.Sell, seen)
}

func (b *Book) checkSide(idx *priceindex.Index, side common.Side, seen map[uint32]bool) {
	for _, price := range idx.ActivePrices() {
		level, ok := idx.Get(price)
		if !ok {
			b.fatalf("active price %d has no level handle", price)
		}
		if level.Volume == 0 {
			b.fatalf("active price %d on side %s has zero volume", price, side)
		}

		var sum uint32
		for _, id := range level.Queue.Snapshot() {
			order, active := b.store.Get(id)
			if !active {
				continue
			}
			if seen[id] {
				b.fatalf("order id %d present in more than one level", id)
			}
			seen[id] = true
			if order.Price != price || order.Side != side {
				b.fatalf("order id %d stored as (%d, %s) but queued under (%d, %s)",
					id, order.Price, order.Side, price, side)
			}
			sum += uint32(order.Quantity)
		}

		if sum != level.Volume {
			b.fatalf("level (%d, %s) volume mismatch: queue sum %d, level volume %d",
				price, side, sum, level.Volume)
		}
		if storeVol := b.store.Volume(price, side); storeVol != level.Volume {
			b.fatalf("level (%d, %s) volume mismatch: store volume %d, level volume %d",
				price, side, storeVol, level.Volume)
		}
	}
}

// fatalf logs the violation at error level and panics. It deliberately
// does not use zerolog's Fatal level, which calls os.Exit and would
// bypass the panic recover path tests rely on.
func (b *Book) fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	b.log.Error().Msg(msg)
	panic(msg)
}
