package common

import "fmt"

// Fill records one (aggressor, counterparty) pairing consumed during a
// single MatchOrder call. It exists for structured logging only —
// nothing persists a Fill beyond the log line it is attached to.
type Fill struct {
	AggressorId   uint32
	CounterId     uint32
	Price         uint16
	MatchQuantity uint16
}

func (f Fill) String() string {
	return fmt.Sprintf("Fill{Aggressor: %d, Counter: %d, Price: %d, Quantity: %d}",
		f.AggressorId, f.CounterId, f.Price, f.MatchQuantity)
}
