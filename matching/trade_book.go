package matching

import (
	"sync"
)

// TradeBook stores every trade of one instrument in-memory with a monotone
// trade ID.
type TradeBook struct {
	Instrument  string
	trades      []*Trade
	tradeMutex  sync.RWMutex
	lastTradeID uint64
}

// NewTradeBook creates an empty trade book.
func NewTradeBook(instrument string) *TradeBook {
	return &TradeBook{
		Instrument: instrument,
		trades:     make([]*Trade, 0),
	}
}

// Enter records a new trade and assigns its ID.
func (t *TradeBook) Enter(trade *Trade) {
	t.tradeMutex.Lock()
	defer t.tradeMutex.Unlock()

	t.lastTradeID++
	trade.ID = t.lastTradeID
	t.trades = append(t.trades, trade)
}

// Trades returns all recorded trades in execution order.
func (t *TradeBook) Trades() []*Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	tradesCopy := make([]*Trade, len(t.trades))
	copy(tradesCopy, t.trades)

	return tradesCopy
}

// LastTrade returns the most recent trade, nil when no trade happened yet.
func (t *TradeBook) LastTrade() *Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	if len(t.trades) == 0 {
		return nil
	}

	return t.trades[len(t.trades)-1]
}

// Size returns the number of recorded trades.
func (t *TradeBook) Size() int {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	return len(t.trades)
}
