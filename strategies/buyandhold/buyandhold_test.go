package buyandhold

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/market"
)

func testFeed(t *testing.T) *data.Historic {
	t.Helper()
	day := func(d int) time.Time {
		return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
	}
	bar := func(d int) data.Bar {
		price := decimal.NewFromInt(int64(d * 10))
		return data.Bar{Time: day(d), Open: price, High: price, Low: price, Close: price, Volume: decimal.NewFromInt(1), AdjClose: price}
	}
	h, err := data.NewHistoric(map[string][]data.Bar{
		"AAPL": {bar(1), bar(2)},
		"MSFT": {bar(2)},
	})
	require.NoError(t, err)
	return h
}

func TestName(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	if n := s.Name(); n != Name {
		t.Errorf("expected %v", Name)
	}
}

func TestOnMarketNil(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	_, err := s.OnMarket(nil, nil)
	assert.ErrorIs(t, err, common.ErrNilArguments)
}

func TestOnMarketSignalsEachSymbolOnce(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	d := testFeed(t)

	// tick 1: only AAPL has streamed a bar
	require.True(t, d.Next())
	sigs, err := s.OnMarket(market.New(d.CurrentTime(), d.Offset()), d)
	require.NoError(t, err)
	require.Len(t, sigs, 1)
	assert.Equal(t, "AAPL", sigs[0].GetSymbol())
	assert.Equal(t, common.Long, sigs[0].GetDirection())

	// tick 2: MSFT joins, AAPL is already held
	require.True(t, d.Next())
	sigs, err = s.OnMarket(market.New(d.CurrentTime(), d.Offset()), d)
	require.NoError(t, err)
	require.Len(t, sigs, 1)
	assert.Equal(t, "MSFT", sigs[0].GetSymbol())

	sigs, err = s.OnMarket(market.New(d.CurrentTime(), d.Offset()), d)
	require.NoError(t, err)
	assert.Empty(t, sigs)
}

func TestSetDefaultsClearsState(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	d := testFeed(t)
	require.True(t, d.Next())
	_, err := s.OnMarket(market.New(d.CurrentTime(), d.Offset()), d)
	require.NoError(t, err)

	s.SetDefaults()
	sigs, err := s.OnMarket(market.New(d.CurrentTime(), d.Offset()), d)
	require.NoError(t, err)
	assert.Len(t, sigs, 1)
}

func TestSetCustomSettings(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	assert.NoError(t, s.SetCustomSettings(nil))
	assert.Error(t, s.SetCustomSettings(map[string]interface{}{"unsupported": 1.0}))
}
