// Package data provides the market data feed that replays historical bars
// onto the backtest event loop
package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// NewHistoric builds a replay feed from one sorted bar series per symbol.
// The combined calendar is the union of every symbol's native timestamps and
// each series is reindexed onto it with forward-fill, a symbol contributes
// nothing before its first native record. Series must be strictly ascending
// with no duplicate timestamps
func NewHistoric(series map[string][]Bar) (*Historic, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	symbols := make([]string, 0, len(series))
	for s := range series {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	// keyed on the instant so equal times in different locations merge
	seen := make(map[int64]struct{})
	var calendar []time.Time
	for _, s := range symbols {
		bars := series[s]
		for i := range bars {
			if i > 0 && !bars[i].Time.After(bars[i-1].Time) {
				return nil, fmt.Errorf("%w: %v timestamps not strictly ascending at %v", ErrMalformedSource, s, bars[i].Time)
			}
			if _, ok := seen[bars[i].Time.UnixNano()]; !ok {
				seen[bars[i].Time.UnixNano()] = struct{}{}
				calendar = append(calendar, bars[i].Time)
			}
		}
	}
	sort.Slice(calendar, func(i, j int) bool {
		return calendar[i].Before(calendar[j])
	})

	reindexed := make(map[string][]*Bar, len(symbols))
	for _, s := range symbols {
		bars := series[s]
		filled := make([]*Bar, len(calendar))
		var last *Bar
		var next int
		for i := range calendar {
			if next < len(bars) && bars[next].Time.Equal(calendar[i]) {
				b := bars[next]
				last = &b
				next++
			}
			filled[i] = last
		}
		reindexed[s] = filled
	}

	return &Historic{
		symbols:   symbols,
		calendar:  calendar,
		reindexed: reindexed,
		latest:    make(map[string][]*Bar, len(symbols)),
	}, nil
}

// Next advances every symbol one calendar position, appending the
// forward-filled bar to each symbol's latest history. It returns false once
// the calendar is exhausted, at which point the backtest should terminate
func (h *Historic) Next() bool {
	if h.offset >= int64(len(h.calendar)) {
		return false
	}
	for _, s := range h.symbols {
		if b := h.reindexed[s][h.offset]; b != nil {
			h.latest[s] = append(h.latest[s], b)
		}
	}
	h.offset++
	return true
}

// Offset returns how many calendar positions have been streamed
func (h *Historic) Offset() int64 {
	return h.offset
}

// CurrentTime returns the calendar timestamp of the most recent advance
func (h *Historic) CurrentTime() time.Time {
	if h.offset == 0 {
		return time.Time{}
	}
	return h.calendar[h.offset-1]
}

// Symbols returns the configured symbols in a fixed order
func (h *Historic) Symbols() []string {
	resp := make([]string, len(h.symbols))
	copy(resp, h.symbols)
	return resp
}

// CalendarLength returns the total number of calendar positions
func (h *Historic) CalendarLength() int64 {
	return int64(len(h.calendar))
}

// Reset winds the feed back to before the first calendar position
func (h *Historic) Reset() {
	h.offset = 0
	h.latest = make(map[string][]*Bar, len(h.symbols))
}

func (h *Historic) history(symbol string) ([]*Bar, error) {
	if _, ok := h.reindexed[symbol]; !ok {
		return nil, fmt.Errorf("%w '%v'", ErrUnknownSymbol, symbol)
	}
	return h.latest[symbol], nil
}

// LatestBar returns the most recently streamed bar for the symbol
func (h *Historic) LatestBar(symbol string) (*Bar, error) {
	bars, err := h.history(symbol)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w '%v'", ErrNoBarYet, symbol)
	}
	return bars[len(bars)-1], nil
}

// LatestBars returns the most recent up to n streamed bars for the symbol.
// Insufficient history is not an error, fewer bars are returned, and a
// non-positive n returns none
func (h *Historic) LatestBars(symbol string, n int) ([]Bar, error) {
	bars, err := h.history(symbol)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(bars) {
		n = len(bars)
	}
	resp := make([]Bar, n)
	for i := 0; i < n; i++ {
		resp[i] = *bars[len(bars)-n+i]
	}
	return resp, nil
}

// LatestTimestamp returns the timestamp of the most recently streamed bar
func (h *Historic) LatestTimestamp(symbol string) (time.Time, error) {
	bar, err := h.LatestBar(symbol)
	if err != nil {
		return time.Time{}, err
	}
	return bar.Time, nil
}

// LatestField returns one scalar from the most recently streamed bar
func (h *Historic) LatestField(symbol string, f Field) (decimal.Decimal, error) {
	bar, err := h.LatestBar(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return fieldValue(bar, f)
}

// LatestFields returns the scalar f from the most recent up to n streamed
// bars, oldest first. Insufficient history is not an error
func (h *Historic) LatestFields(symbol string, f Field, n int) ([]decimal.Decimal, error) {
	bars, err := h.LatestBars(symbol, n)
	if err != nil {
		return nil, err
	}
	resp := make([]decimal.Decimal, len(bars))
	for i := range bars {
		resp[i], err = fieldValue(&bars[i], f)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func fieldValue(b *Bar, f Field) (decimal.Decimal, error) {
	switch f {
	case Open:
		return b.Open, nil
	case High:
		return b.High, nil
	case Low:
		return b.Low, nil
	case Close:
		return b.Close, nil
	case Volume:
		return b.Volume, nil
	case AdjClose:
		return b.AdjClose, nil
	default:
		return decimal.Zero, fmt.Errorf("%w '%v'", ErrUnknownField, f)
	}
}
