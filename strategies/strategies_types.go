package strategies

import (
	"errors"

	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/market"
	"github.com/quantave/backtester/eventtypes/signal"
)

// ErrStrategyNotFound is returned when a strategy does not exist
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler defines all functions required to run strategies against a
// market update. A strategy only ever reads from the data feed, any
// resulting signals are enqueued by the backtest loop
type Handler interface {
	Name() string
	Description() string
	OnMarket(m market.Event, d data.Handler) ([]signal.Event, error)
	SetCustomSettings(map[string]interface{}) error
	SetDefaults()
}
