package matching

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Side string

var (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Order is a single buy or sell order resting in, or arriving at, an order
// book. Side and Price never change after creation; RemainingQuantity is
// mutated only by the matching loop. Sequence is the per-instrument arrival
// counter and breaks ties between orders at the same price.
type Order struct {
	Side              Side            `json:"side"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	Sequence          uint64          `json:"sequence"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewOrder(side Side, price decimal.Decimal, quantity int64, sequence uint64) *Order {
	return &Order{
		Side:              side,
		Price:             price,
		Quantity:          quantity,
		RemainingQuantity: quantity,
		Sequence:          sequence,
		CreatedAt:         time.Now(),
	}
}

// Filled reports whether the order has no quantity left to trade.
func (o *Order) Filled() bool {
	return o.RemainingQuantity == 0
}

// ReduceBy consumes quantity from the order. Reducing below zero means the
// matching loop broke an invariant, so fail loudly instead of clamping.
func (o *Order) ReduceBy(quantity int64) {
	if quantity > o.RemainingQuantity {
		panic(fmt.Sprintf("matching: reduce order %d by %d with only %d remaining", o.Sequence, quantity, o.RemainingQuantity))
	}

	o.RemainingQuantity -= quantity
}

// IsCrossed reports whether the order would trade against a counter order at
// the given price.
func (o *Order) IsCrossed(price decimal.Decimal) bool {
	if o.Side == SideSell {
		return price.GreaterThanOrEqual(o.Price)
	}

	return price.LessThanOrEqual(o.Price)
}
