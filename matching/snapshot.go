package matching

import "github.com/shopspring/decimal"

// OrderView is the externally visible shape of a resting order.
type OrderView struct {
	Side              Side            `json:"side"`
	Price             decimal.Decimal `json:"price"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	Sequence          uint64          `json:"sequence"`
}

// BookSnapshot lists both sides of a book in priority order: bids by price
// descending, asks by price ascending, ties by arrival sequence.
type BookSnapshot struct {
	Instrument string      `json:"instrument"`
	Bids       []OrderView `json:"bids"`
	Asks       []OrderView `json:"asks"`
}

// Snapshot copies the book's resting orders into a BookSnapshot. Callers
// get values, never references into the book.
func (ob *OrderBook) Snapshot() *BookSnapshot {
	ob.RLock()
	defer ob.RUnlock()

	snapshot := &BookSnapshot{
		Instrument: ob.Instrument,
		Bids:       make([]OrderView, 0),
		Asks:       make([]OrderView, 0),
	}

	bit := ob.Bids.Iterator()
	bit.End()
	for bit.Prev() {
		level := bit.Value().(*PriceLevel)
		for _, order := range level.Orders {
			snapshot.Bids = append(snapshot.Bids, viewOf(order))
		}
	}

	ait := ob.Asks.Iterator()
	ait.End()
	for ait.Prev() {
		level := ait.Value().(*PriceLevel)
		for _, order := range level.Orders {
			snapshot.Asks = append(snapshot.Asks, viewOf(order))
		}
	}

	return snapshot
}

func viewOf(order *Order) OrderView {
	return OrderView{
		Side:              order.Side,
		Price:             order.Price,
		RemainingQuantity: order.RemainingQuantity,
		Sequence:          order.Sequence,
	}
}
