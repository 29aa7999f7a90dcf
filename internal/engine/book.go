package engine

import (
	"github.com/fenrir-labs/lob/internal/common"
	"github.com/fenrir-labs/lob/internal/priceindex"
	"github.com/fenrir-labs/lob/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Book is a single-symbol limit order book: one order store shared by
// both sides, and a price-level index per side.
type Book struct {
	id     uuid.UUID
	symbol string

	store *store.Store
	buy   *priceindex.Index
	sell  *priceindex.Index

	log zerolog.Logger
}

// NewBook allocates a book for symbol, sized to the package's fixed
// MaxOrders/MaxOrdersPerLevel/MaxPrice domain.
func NewBook(symbol string) *Book {
	id := uuid.New()
	return &Book{
		id:     id,
		symbol: symbol,
		store:  store.New(MaxOrders, MaxPrice),
		buy:    priceindex.New(MaxPrice, true),
		sell:   priceindex.New(MaxPrice, false),
		log: log.With().
			Str("component", "book").
			Str("book_id", id.String()).
			Str("symbol", symbol).
			Logger(),
	}
}

// ID returns the book's correlation identifier, the book_id field of its
// log lines — distinct from any order id.
func (b *Book) ID() uuid.UUID {
	return b.id
}

// Symbol returns the instrument this book matches.
func (b *Book) Symbol() string {
	return b.symbol
}

func (b *Book) indexFor(side common.Side) *priceindex.Index {
	if side == common.Buy {
		return b.buy
	}
	return b.sell
}

func (b *Book) oppositeIndex(side common.Side) *priceindex.Index {
	if side == common.Buy {
		return b.sell
	}
	return b.buy
}

// crosses reports whether an incoming order at price, on side, is
// marketable against the opposite side's best price.
func crosses(side common.Side, price, bestPrice uint16) bool {
	if side == common.Buy {
		return price >= bestPrice
	}
	return price <= bestPrice
}
