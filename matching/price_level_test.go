package matching

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type suitePriceLevelTester struct {
	suite.Suite
}

func (s *suitePriceLevelTester) TestArrivalOrder() {
	level := NewPriceLevel(SideBuy, decimal.NewFromInt(10))

	second := NewOrder(SideBuy, decimal.NewFromInt(10), 3, 2)
	first := NewOrder(SideBuy, decimal.NewFromInt(10), 5, 1)

	level.Add(second)
	level.Add(first)

	s.Equal(first, level.Top())
	s.Equal(2, level.Size())
	s.EqualValues(8, level.Total())

	// adding the same sequence twice is a no-op
	level.Add(first)
	s.Equal(2, level.Size())
}

func (s *suitePriceLevelTester) TestRemove() {
	level := NewPriceLevel(SideSell, decimal.NewFromInt(10))

	first := NewOrder(SideSell, decimal.NewFromInt(10), 5, 1)
	second := NewOrder(SideSell, decimal.NewFromInt(10), 3, 2)

	level.Add(first)
	level.Add(second)

	level.Remove(first)
	s.Equal(second, level.Top())
	s.EqualValues(3, level.Total())

	level.Remove(second)
	s.True(level.Empty())
	s.Nil(level.Top())
}

func TestPriceLevel(t *testing.T) {
	suite.Run(t, new(suitePriceLevelTester))
}
