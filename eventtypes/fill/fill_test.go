package fill

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantave/backtester/common"
)

func TestNewCalculatesCommission(t *testing.T) {
	t.Parallel()
	f, err := New(time.Now(), "AAPL", "SIMULATED", 100, common.Buy, decimal.NewFromInt(15000), nil)
	require.NoError(t, err)
	assert.Truef(t, f.GetCommission().Equal(decimal.NewFromFloat(1.3)), "received %v", f.GetCommission())

	f, err = New(time.Now(), "AAPL", "SIMULATED", 1000, common.Sell, decimal.NewFromInt(150000), nil)
	require.NoError(t, err)
	assert.Truef(t, f.GetCommission().Equal(decimal.NewFromInt(8)), "received %v", f.GetCommission())
}

func TestNewSuppliedCommission(t *testing.T) {
	t.Parallel()
	supplied := decimal.NewFromFloat(0.01)
	f, err := New(time.Now(), "AAPL", "ARCA", 1000, common.Buy, decimal.NewFromInt(150000), &supplied)
	require.NoError(t, err)
	// the fee schedule would have charged 8, the supplied value wins
	assert.Truef(t, f.GetCommission().Equal(supplied), "received %v", f.GetCommission())
}

func TestNewNegativeQuantity(t *testing.T) {
	t.Parallel()
	_, err := New(time.Now(), "AAPL", "ARCA", -100, common.Buy, decimal.Zero, nil)
	assert.ErrorIs(t, err, common.ErrInvalidQuantity)
}

func TestNewInvalidDirection(t *testing.T) {
	t.Parallel()
	_, err := New(time.Now(), "AAPL", "ARCA", 100, common.Long, decimal.Zero, nil)
	assert.ErrorIs(t, err, common.ErrInvalidSide)
}

func TestFillFields(t *testing.T) {
	t.Parallel()
	tt := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	f, err := New(tt, "MSFT", "SIMULATED", 5, common.Sell, decimal.NewFromInt(900), nil)
	require.NoError(t, err)
	assert.Equal(t, tt, f.GetTime())
	assert.Equal(t, "MSFT", f.GetSymbol())
	assert.Equal(t, "SIMULATED", f.GetExchange())
	assert.Equal(t, int64(5), f.GetQuantity())
	assert.Equal(t, common.Sell, f.GetDirection())
	assert.True(t, f.GetFillCost().Equal(decimal.NewFromInt(900)))
	assert.True(t, f.IsFill())
}
