package portfolio

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/fill"
	"github.com/quantave/backtester/eventtypes/market"
	"github.com/quantave/backtester/eventtypes/order"
	"github.com/quantave/backtester/eventtypes/signal"
	"github.com/quantave/backtester/statistics"
)

var (
	// errInvalidInitialCapital occurs when a portfolio is created without
	// positive starting funds
	errInvalidInitialCapital = errors.New("initial capital must be positive")
	// errInvalidOrderSize occurs when a portfolio is created with a
	// non-positive default order size
	errInvalidOrderSize = errors.New("default order size must be positive")
	// errNoEquityHistory occurs when summary statistics are requested
	// before any time index update has been processed
	errNoEquityHistory = errors.New("no equity history recorded")
)

// Handler contains all functionality expected of a portfolio. Signals come
// in, sized orders go out, fills update holdings and every market update
// appends to the equity curve
type Handler interface {
	OnSignal(signal.Event, data.Handler) ([]order.Event, error)
	OnFill(fill.Event) error
	UpdateTimeIndex(market.Event, data.Handler) error
	SummaryStats() ([]statistics.Stat, error)
	Reset()
}

// Portfolio is a naive implementation of the Handler interface. It sizes
// every order as the signal strength multiplied by a fixed default quantity
// and marks holdings to the latest close each tick
type Portfolio struct {
	initialCapital   decimal.Decimal
	defaultOrderSize int64
	periodsPerYear   float64
	riskFreeRate     float64

	cash      decimal.Decimal
	positions map[string]int64
	equity    []statistics.EquityPoint
}
