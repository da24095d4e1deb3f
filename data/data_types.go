package data

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Open is the opening price of a bar
	Open Field = "open"
	// High is the highest price of a bar
	High Field = "high"
	// Low is the lowest price of a bar
	Low Field = "low"
	// Close is the closing price of a bar
	Close Field = "close"
	// Volume is the traded volume of a bar
	Volume Field = "volume"
	// AdjClose is the dividend and split adjusted closing price of a bar
	AdjClose Field = "adj_close"
)

var (
	// ErrUnknownSymbol occurs when a symbol the feed was never configured
	// with is queried
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrNoBarYet occurs when a symbol is queried before the feed has
	// advanced past its first calendar position
	ErrNoBarYet = errors.New("no bar for symbol yet")
	// ErrUnknownField occurs when a bar field outside the enumerated set is queried
	ErrUnknownField = errors.New("unknown bar field")
	// ErrMalformedSource occurs at construction when a bar source is
	// unreadable, unsorted or has unparsable values
	ErrMalformedSource = errors.New("malformed bar source")
	// ErrNoData occurs at construction when no bar series are supplied
	ErrNoData = errors.New("no bar data supplied")
)

// Field identifies one scalar column of a bar
type Field string

// Bar is one timestamped open/high/low/close/volume observation for a symbol,
// immutable once recorded
type Bar struct {
	Time     time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	Volume   decimal.Decimal
	AdjClose decimal.Decimal
}

// Handler interface for streaming bars to the backtest one calendar tick at
// a time and querying the most recent history per symbol
type Handler interface {
	Next() bool
	Offset() int64
	CurrentTime() time.Time
	Symbols() []string
	LatestBar(symbol string) (*Bar, error)
	LatestBars(symbol string, n int) ([]Bar, error)
	LatestTimestamp(symbol string) (time.Time, error)
	LatestField(symbol string, f Field) (decimal.Decimal, error)
	LatestFields(symbol string, f Field, n int) ([]decimal.Decimal, error)
	Reset()
}

// Historic replays pre-loaded bar series across a combined calendar. Every
// symbol is reindexed onto the union of all native timestamps with the most
// recent prior observation carried forward into gaps
type Historic struct {
	symbols   []string
	calendar  []time.Time
	reindexed map[string][]*Bar
	latest    map[string][]*Bar
	offset    int64
}
