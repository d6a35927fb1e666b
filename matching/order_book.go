package matching

import (
	"sync"
	"time"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/shopspring/decimal"

	"github.com/equibook/equibook/config"
)

// OrderBook holds the resting bids and asks of a single instrument as
// red-black trees of price levels. The comparator is side-aware so that
// tree.Right() is always the best level: the highest bid and the lowest ask.
type OrderBook struct {
	sync.RWMutex
	Instrument string

	Bids *rbt.Tree
	Asks *rbt.Tree

	lastSequence uint64
}

// Comparator orders price level keys so the best level of either side sits
// at the right edge of its tree.
func Comparator(a, b interface{}) int {
	this := a.(*PriceLevelKey)
	that := b.(*PriceLevelKey)

	switch {
	case this.Side == SideSell && this.Price.LessThan(that.Price):
		return 1

	case this.Side == SideSell && this.Price.GreaterThan(that.Price):
		return -1

	case this.Side == SideBuy && this.Price.LessThan(that.Price):
		return -1

	case this.Side == SideBuy && this.Price.GreaterThan(that.Price):
		return 1

	default:
		return 0
	}
}

// NewOrderBook returns an empty book for the given instrument.
func NewOrderBook(instrument string) *OrderBook {
	return &OrderBook{
		Instrument: instrument,
		Bids:       rbt.NewWith(Comparator),
		Asks:       rbt.NewWith(Comparator),
	}
}

// InsertOrder admits a new order: it stamps the next arrival sequence,
// matches the order against the opposite side until no cross remains and
// rests whatever quantity is left. Sequencing and mutation happen under one
// lock so concurrent submitters observe a single total order per instrument.
func (ob *OrderBook) InsertOrder(side Side, price decimal.Decimal, quantity int64) (*Order, []*Trade) {
	ob.Lock()
	defer ob.Unlock()

	ob.lastSequence++
	newOrder := NewOrder(side, price, quantity, ob.lastSequence)

	config.Logger.Debugf("[equibook.orderbook] insert order %d - %s * %d, side %s", newOrder.Sequence, newOrder.Price, newOrder.Quantity, newOrder.Side)

	trades := ob.matchOrder(newOrder)

	if !newOrder.Filled() {
		ob.addOrder(newOrder)
	}

	return newOrder, trades
}

// matchOrder runs the convergence loop: best taker quantity against the best
// opposite level until the books no longer cross. Each iteration strictly
// reduces resting quantity, so the loop terminates and the book is never
// left crossed.
func (ob *OrderBook) matchOrder(taker *Order) []*Trade {
	trades := []*Trade{}

	var makerBook *rbt.Tree
	switch taker.Side {
	case SideBuy:
		makerBook = ob.Asks
	case SideSell:
		makerBook = ob.Bids
	default:
		config.Logger.Errorf("[equibook.orderbook] invalid order side %s", taker.Side)
		return trades
	}

	for !taker.Filled() {
		best := makerBook.Right()
		if best == nil {
			break
		}

		level := best.Value.(*PriceLevel)
		if level.Empty() {
			makerBook.Remove(best.Key)
			continue
		}

		maker := level.Top()
		if !taker.IsCrossed(maker.Price) {
			break
		}

		quantity := taker.RemainingQuantity
		if maker.RemainingQuantity < quantity {
			quantity = maker.RemainingQuantity
		}

		maker.ReduceBy(quantity)
		taker.ReduceBy(quantity)

		newTrade := &Trade{
			Instrument:    ob.Instrument,
			Price:         maker.Price,
			Quantity:      quantity,
			Total:         maker.Price.Mul(decimal.NewFromInt(quantity)),
			TakerSide:     taker.Side,
			MakerSequence: maker.Sequence,
			TakerSequence: taker.Sequence,
			CreatedAt:     time.Now(),
		}
		trades = append(trades, newTrade)

		config.Logger.Debugf("[equibook.orderbook] new trade with price %s, quantity %d", newTrade.Price, newTrade.Quantity)

		if maker.Filled() {
			level.Remove(maker)
			if level.Empty() {
				makerBook.Remove(level.Key())
			}
		}
	}

	return trades
}

// addOrder rests the order at its price level, creating the level on first
// use.
func (ob *OrderBook) addOrder(order *Order) {
	var book *rbt.Tree
	if order.Side == SideSell {
		book = ob.Asks
	} else {
		book = ob.Bids
	}

	level := NewPriceLevel(order.Side, order.Price)

	value, found := book.Get(level.Key())
	if found {
		level = value.(*PriceLevel)
	} else {
		book.Put(level.Key(), level)
	}

	level.Add(order)
}

// BestBid returns the bid with the highest priority, nil when the bid side
// is empty.
func (ob *OrderBook) BestBid() *Order {
	ob.RLock()
	defer ob.RUnlock()

	return bestOf(ob.Bids)
}

// BestAsk returns the ask with the highest priority, nil when the ask side
// is empty.
func (ob *OrderBook) BestAsk() *Order {
	ob.RLock()
	defer ob.RUnlock()

	return bestOf(ob.Asks)
}

func bestOf(book *rbt.Tree) *Order {
	node := book.Right()
	if node == nil {
		return nil
	}

	return node.Value.(*PriceLevel).Top()
}
