package data

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func bar(d int, close float64) Bar {
	c := decimal.NewFromFloat(close)
	return Bar{
		Time:     day(d),
		Open:     c,
		High:     c.Add(decimal.NewFromInt(1)),
		Low:      c.Sub(decimal.NewFromInt(1)),
		Close:    c,
		Volume:   decimal.NewFromInt(1000),
		AdjClose: c,
	}
}

func TestNewHistoricNoData(t *testing.T) {
	t.Parallel()
	_, err := NewHistoric(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewHistoricUnsorted(t *testing.T) {
	t.Parallel()
	_, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(2, 10), bar(1, 11)},
	})
	assert.ErrorIs(t, err, ErrMalformedSource)
}

func TestNewHistoricDuplicateTimestamp(t *testing.T) {
	t.Parallel()
	_, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10), bar(1, 11)},
	})
	assert.ErrorIs(t, err, ErrMalformedSource)
}

func TestCalendarIsUnionOfNativeTimestamps(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10), bar(3, 12)},
		"MSFT": {bar(2, 20), bar(4, 22)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), h.CalendarLength())

	var ticks int64
	for h.Next() {
		ticks++
	}
	assert.Equal(t, int64(4), ticks)
	assert.False(t, h.Next())
	assert.Equal(t, day(4), h.CurrentTime())
}

func TestForwardFill(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10), bar(3, 12)},
		"MSFT": {bar(2, 20), bar(4, 22)},
	})
	require.NoError(t, err)

	// tick 1: AAPL has a native bar, MSFT has nothing yet
	require.True(t, h.Next())
	c, err := h.LatestField("AAPL", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(10)))
	_, err = h.LatestBar("MSFT")
	assert.ErrorIs(t, err, ErrNoBarYet)

	// tick 2: AAPL carries forward its day 1 bar, MSFT gets its first record
	require.True(t, h.Next())
	c, err = h.LatestField("AAPL", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(10)))
	ts, err := h.LatestTimestamp("AAPL")
	require.NoError(t, err)
	assert.Equal(t, day(1), ts)
	c, err = h.LatestField("MSFT", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(20)))

	// tick 3: AAPL updates, MSFT carries forward
	require.True(t, h.Next())
	c, err = h.LatestField("AAPL", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(12)))
	c, err = h.LatestField("MSFT", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(20)))

	// tick 4: the forward-filled AAPL bar is appended to its history buffer
	require.True(t, h.Next())
	bars, err := h.LatestBars("AAPL", 10)
	require.NoError(t, err)
	assert.Len(t, bars, 4)
	assert.True(t, bars[3].Close.Equal(decimal.NewFromInt(12)))
}

func TestLatestBarsInsufficientHistory(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10), bar(2, 11)},
	})
	require.NoError(t, err)

	bars, err := h.LatestBars("AAPL", 5)
	require.NoError(t, err)
	assert.Empty(t, bars)

	require.True(t, h.Next())
	bars, err = h.LatestBars("AAPL", 5)
	require.NoError(t, err)
	assert.Len(t, bars, 1)

	require.True(t, h.Next())
	fields, err := h.LatestFields("AAPL", Close, 1)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.True(t, fields[0].Equal(decimal.NewFromFloat(11)))
}

func TestLatestBarsNonPositiveCount(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10)},
	})
	require.NoError(t, err)
	require.True(t, h.Next())

	bars, err := h.LatestBars("AAPL", 0)
	require.NoError(t, err)
	assert.Empty(t, bars)

	bars, err = h.LatestBars("AAPL", -1)
	require.NoError(t, err)
	assert.Empty(t, bars)

	fields, err := h.LatestFields("AAPL", Close, -56)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestCalendarMergesEquivalentInstants(t *testing.T) {
	t.Parallel()
	// the same instant spelled in two locations is one calendar entry
	est := time.FixedZone("EST", -5*60*60)
	aaplBar := bar(1, 10)
	msftBar := bar(1, 20)
	msftBar.Time = msftBar.Time.In(est)
	require.True(t, aaplBar.Time.Equal(msftBar.Time))

	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {aaplBar},
		"MSFT": {msftBar},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.CalendarLength())

	require.True(t, h.Next())
	c, err := h.LatestField("AAPL", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(10)))
	c, err = h.LatestField("MSFT", Close)
	require.NoError(t, err)
	assert.True(t, c.Equal(decimal.NewFromInt(20)))
	assert.False(t, h.Next())
}

func TestUnknownSymbol(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10)},
	})
	require.NoError(t, err)
	require.True(t, h.Next())

	_, err = h.LatestBar("GOOG")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = h.LatestBars("GOOG", 1)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = h.LatestTimestamp("GOOG")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = h.LatestField("GOOG", Close)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = h.LatestFields("GOOG", Close, 1)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestUnknownField(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10)},
	})
	require.NoError(t, err)
	require.True(t, h.Next())
	_, err = h.LatestField("AAPL", "vwap")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestReset(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"AAPL": {bar(1, 10), bar(2, 11)},
	})
	require.NoError(t, err)
	require.True(t, h.Next())
	require.True(t, h.Next())
	require.False(t, h.Next())

	h.Reset()
	assert.Equal(t, int64(0), h.Offset())
	_, err = h.LatestBar("AAPL")
	assert.ErrorIs(t, err, ErrNoBarYet)
	assert.True(t, h.Next())
}

func TestSymbolsFixedOrder(t *testing.T) {
	t.Parallel()
	h, err := NewHistoric(map[string][]Bar{
		"MSFT": {bar(1, 1)},
		"AAPL": {bar(1, 1)},
		"GOOG": {bar(1, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "GOOG", "MSFT"}, h.Symbols())
}
