package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// errNotEnoughDataPoints occurs when an equity curve is too short to
	// calculate returns from
	errNotEnoughDataPoints = errors.New("not enough data points")
	// errInvalidInitialEquity occurs when the first equity point is not positive
	errInvalidInitialEquity = errors.New("initial equity must be positive")
)

// EquityPoint is one sample of total portfolio value at a calendar tick
type EquityPoint struct {
	Time   time.Time
	Equity decimal.Decimal
}

// Results holds the performance metrics of one completed run
type Results struct {
	TotalReturn      decimal.Decimal
	CAGR             decimal.Decimal
	Sharpe           decimal.Decimal
	MaxDrawdown      decimal.Decimal
	DrawdownDuration int64
}

// Stat is one labelled summary value
type Stat struct {
	Label string
	Value decimal.Decimal
}
