package matching

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceLevel is the FIFO queue of resting orders sharing one price. Orders
// are kept sorted by Sequence so Top always returns the earliest arrival.
type PriceLevel struct {
	Side   Side
	Price  decimal.Decimal
	Orders []*Order
}

type PriceLevelKey struct {
	Side  Side
	Price decimal.Decimal
}

func NewPriceLevel(side Side, price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Side:   side,
		Price:  price,
		Orders: make([]*Order, 0),
	}
}

func (p *PriceLevel) Key() *PriceLevelKey {
	return &PriceLevelKey{
		Side:  p.Side,
		Price: p.Price,
	}
}

func (p *PriceLevel) Add(order *Order) {
	for _, o := range p.Orders {
		if o.Sequence == order.Sequence {
			return
		}
	}

	p.Orders = append(p.Orders, order)
	sort.Slice(p.Orders, func(i, j int) bool {
		return p.Orders[i].Sequence < p.Orders[j].Sequence
	})
}

// Top returns the order with time priority at this level, nil when empty.
func (p *PriceLevel) Top() *Order {
	if p.Empty() {
		return nil
	}

	return p.Orders[0]
}

func (p *PriceLevel) Empty() bool {
	return len(p.Orders) == 0
}

func (p *PriceLevel) Size() int {
	return len(p.Orders)
}

// Total is the resting quantity across all orders at this level.
func (p *PriceLevel) Total() int64 {
	var total int64

	for _, order := range p.Orders {
		total += order.RemainingQuantity
	}

	return total
}

func (p *PriceLevel) Remove(order *Order) {
	for index, o := range p.Orders {
		if o.Sequence == order.Sequence {
			p.Orders = append(p.Orders[:index], p.Orders[index+1:]...)
			return
		}
	}
}
