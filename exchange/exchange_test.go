package exchange

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/order"
)

func testFeed(t *testing.T) *data.Historic {
	t.Helper()
	price := decimal.NewFromInt(150)
	h, err := data.NewHistoric(map[string][]data.Bar{
		"AAPL": {{
			Time:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Open:  price, High: price, Low: price, Close: price,
			Volume: decimal.NewFromInt(1), AdjClose: price,
		}},
	})
	require.NoError(t, err)
	require.True(t, h.Next())
	return h
}

func TestNewDefaultVenue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultVenue, New("").Venue)
	assert.Equal(t, "ARCA", New("ARCA").Venue)
}

func TestExecuteOrder(t *testing.T) {
	t.Parallel()
	e := New("")
	d := testFeed(t)
	o, err := order.New("AAPL", common.MarketOrder, 100, common.Buy)
	require.NoError(t, err)
	o.SetOffset(1)

	f, err := e.ExecuteOrder(o, d)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", f.GetSymbol())
	assert.Equal(t, DefaultVenue, f.GetExchange())
	assert.Equal(t, int64(100), f.GetQuantity())
	assert.Equal(t, common.Buy, f.GetDirection())
	assert.Equal(t, int64(1), f.GetOffset())
	assert.Truef(t, f.GetFillCost().Equal(decimal.NewFromInt(15000)), "received %v", f.GetFillCost())
	// commission from the fee schedule: max(1.3, 0.013*100)
	assert.Truef(t, f.GetCommission().Equal(decimal.NewFromFloat(1.3)), "received %v", f.GetCommission())
}

func TestExecuteOrderUnknownSymbol(t *testing.T) {
	t.Parallel()
	e := New("")
	d := testFeed(t)
	o, err := order.New("GOOG", common.MarketOrder, 100, common.Buy)
	require.NoError(t, err)
	_, err = e.ExecuteOrder(o, d)
	assert.ErrorIs(t, err, data.ErrUnknownSymbol)
}

func TestExecuteOrderNil(t *testing.T) {
	t.Parallel()
	e := New("")
	_, err := e.ExecuteOrder(nil, nil)
	assert.ErrorIs(t, err, common.ErrNilArguments)
}
