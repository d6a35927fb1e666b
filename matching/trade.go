package matching

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents two opposed matched orders. Price is always the resting
// (maker) order's price; TakerSide is the side of the incoming order that
// crossed it.
type Trade struct {
	ID            uint64          `json:"id"`
	Instrument    string          `json:"instrument"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	TakerSide     Side            `json:"taker_side"`
	MakerSequence uint64          `json:"maker_sequence"`
	TakerSequence uint64          `json:"taker_sequence"`
	CreatedAt     time.Time       `json:"created_at"`
}
