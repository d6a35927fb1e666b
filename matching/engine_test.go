package matching

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type suiteEngineTester struct {
	suite.Suite
}

func newTestEngine() *Engine {
	return NewEngine([]string{"TATA", "RELIANCE"})
}

func (s *suiteEngineTester) TestSubmitRestingOrder() {
	engine := newTestEngine()

	result, err := engine.Submit("TATA", SideBuy, decimal.NewFromInt(155), 5)
	s.NoError(err)
	s.Empty(result.Trades)
	s.EqualValues(5, result.RestingQuantity)
	s.EqualValues(1, result.Sequence)

	snapshot, err := engine.Snapshot("TATA")
	s.NoError(err)
	s.Len(snapshot.Bids, 1)
	s.True(snapshot.Bids[0].Price.Equal(decimal.NewFromInt(155)))
	s.Empty(snapshot.Asks)
}

func (s *suiteEngineTester) TestSubmitCrossingOrder() {
	engine := newTestEngine()

	engine.Submit("TATA", SideBuy, decimal.NewFromInt(155), 5)
	engine.Submit("TATA", SideSell, decimal.NewFromInt(160), 7)

	result, err := engine.Submit("TATA", SideBuy, decimal.NewFromInt(160), 7)
	s.NoError(err)
	s.Len(result.Trades, 1)
	s.True(result.Trades[0].Price.Equal(decimal.NewFromInt(160)))
	s.EqualValues(7, result.Trades[0].Quantity)
	s.Equal(SideBuy, result.Trades[0].TakerSide)
	s.EqualValues(0, result.RestingQuantity)

	snapshot, _ := engine.Snapshot("TATA")
	s.Len(snapshot.Bids, 1)
	s.EqualValues(5, snapshot.Bids[0].RemainingQuantity)
	s.Empty(snapshot.Asks)
}

func (s *suiteEngineTester) TestTradeBookRecordsFills() {
	engine := newTestEngine()

	engine.Submit("RELIANCE", SideSell, decimal.NewFromInt(200), 10)
	engine.Submit("RELIANCE", SideBuy, decimal.NewFromInt(200), 4)
	engine.Submit("RELIANCE", SideBuy, decimal.NewFromInt(200), 6)

	tradeBook, err := engine.TradeBook("RELIANCE")
	s.NoError(err)
	s.Equal(2, tradeBook.Size())

	trades := tradeBook.Trades()
	s.EqualValues(1, trades[0].ID)
	s.EqualValues(2, trades[1].ID)
	s.EqualValues(4, trades[0].Quantity)
	s.EqualValues(6, trades[1].Quantity)
	s.Equal(trades[1], tradeBook.LastTrade())

	// other instruments are untouched
	other, err := engine.TradeBook("TATA")
	s.NoError(err)
	s.Equal(0, other.Size())
}

func (s *suiteEngineTester) TestValidationLeavesBooksUntouched() {
	engine := newTestEngine()

	engine.Submit("TATA", SideBuy, decimal.NewFromInt(155), 5)
	engine.Submit("RELIANCE", SideSell, decimal.NewFromInt(200), 10)

	tataBefore, _ := engine.Snapshot("TATA")
	relianceBefore, _ := engine.Snapshot("RELIANCE")

	_, err := engine.Submit("InvalidStock", SideBuy, decimal.NewFromInt(150), 5)
	s.True(errors.Is(err, ErrUnknownInstrument))

	_, err = engine.Submit("TATA", SideBuy, decimal.NewFromInt(-1), 5)
	s.True(errors.Is(err, ErrInvalidPrice))

	_, err = engine.Submit("TATA", SideBuy, decimal.Zero, 5)
	s.True(errors.Is(err, ErrInvalidPrice))

	_, err = engine.Submit("TATA", SideBuy, decimal.NewFromInt(150), -5)
	s.True(errors.Is(err, ErrInvalidQuantity))

	_, err = engine.Submit("TATA", SideBuy, decimal.NewFromInt(150), 0)
	s.True(errors.Is(err, ErrInvalidQuantity))

	_, err = engine.Submit("TATA", Side("hold"), decimal.NewFromInt(150), 5)
	s.True(errors.Is(err, ErrInvalidSide))

	tataAfter, _ := engine.Snapshot("TATA")
	relianceAfter, _ := engine.Snapshot("RELIANCE")

	s.Equal(tataBefore, tataAfter)
	s.Equal(relianceBefore, relianceAfter)
}

func (s *suiteEngineTester) TestSnapshotUnknownInstrument() {
	engine := newTestEngine()

	_, err := engine.Snapshot("InvalidStock")
	s.True(errors.Is(err, ErrUnknownInstrument))

	_, err = engine.TradeBook("InvalidStock")
	s.True(errors.Is(err, ErrUnknownInstrument))
}

func (s *suiteEngineTester) TestInstruments() {
	engine := newTestEngine()

	s.Equal([]string{"RELIANCE", "TATA"}, engine.Instruments())
}

func (s *suiteEngineTester) TestSequencesArePerInstrument() {
	engine := newTestEngine()

	first, _ := engine.Submit("TATA", SideBuy, decimal.NewFromInt(10), 1)
	second, _ := engine.Submit("RELIANCE", SideBuy, decimal.NewFromInt(10), 1)
	third, _ := engine.Submit("TATA", SideBuy, decimal.NewFromInt(10), 1)

	s.EqualValues(1, first.Sequence)
	s.EqualValues(1, second.Sequence)
	s.EqualValues(2, third.Sequence)
}

func TestEngine(t *testing.T) {
	suite.Run(t, new(suiteEngineTester))
}
