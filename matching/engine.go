package matching

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrInvalidSide       = errors.New("invalid side")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

// SubmitResult reports the outcome of one accepted submission: the trades it
// produced, the quantity left resting in the book and the arrival sequence
// the order was stamped with.
type SubmitResult struct {
	Trades          []*Trade `json:"trades"`
	RestingQuantity int64    `json:"resting_quantity"`
	Sequence        uint64   `json:"sequence"`
}

// Engine routes submissions to per-instrument order books. The instrument
// set is fixed at construction.
type Engine struct {
	books      map[string]*OrderBook
	tradeBooks map[string]*TradeBook
}

// NewEngine creates one order book and one trade book per configured
// instrument.
func NewEngine(instruments []string) *Engine {
	engine := &Engine{
		books:      make(map[string]*OrderBook, len(instruments)),
		tradeBooks: make(map[string]*TradeBook, len(instruments)),
	}

	for _, instrument := range instruments {
		engine.books[instrument] = NewOrderBook(instrument)
		engine.tradeBooks[instrument] = NewTradeBook(instrument)
	}

	return engine
}

// Submit validates the request, admits the order into the instrument's book
// and returns the trades produced by matching it. Validation failures leave
// every book untouched.
func (e *Engine) Submit(instrument string, side Side, price decimal.Decimal, quantity int64) (*SubmitResult, error) {
	book, found := e.books[instrument]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, instrument)
	}

	if side != SideBuy && side != SideSell {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSide, side)
	}

	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}

	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	order, trades := book.InsertOrder(side, price, quantity)

	tradeBook := e.tradeBooks[instrument]
	for _, trade := range trades {
		tradeBook.Enter(trade)
	}

	return &SubmitResult{
		Trades:          trades,
		RestingQuantity: order.RemainingQuantity,
		Sequence:        order.Sequence,
	}, nil
}

// Snapshot returns both sides of the instrument's book in priority order.
func (e *Engine) Snapshot(instrument string) (*BookSnapshot, error) {
	book, found := e.books[instrument]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, instrument)
	}

	return book.Snapshot(), nil
}

// TradeBook returns the instrument's trade log.
func (e *Engine) TradeBook(instrument string) (*TradeBook, error) {
	tradeBook, found := e.tradeBooks[instrument]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, instrument)
	}

	return tradeBook, nil
}

// Instruments lists the configured instrument names in stable order.
func (e *Engine) Instruments() []string {
	instruments := make([]string, 0, len(e.books))
	for instrument := range e.books {
		instruments = append(instruments, instrument)
	}
	sort.Strings(instruments)

	return instruments
}
