package exchange

import (
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/fill"
	"github.com/quantave/backtester/eventtypes/order"
)

// DefaultVenue names the simulated execution venue on fills when no venue
// is configured
const DefaultVenue = "SIMULATED"

// ExecutionHandler interface dictates what functions are required to execute
// an order against the feed's latest prices
type ExecutionHandler interface {
	ExecuteOrder(order.Event, data.Handler) (fill.Event, error)
	Reset()
}

// Simulated fills every order immediately and in full at the latest close,
// with no partial fills, rejections or slippage
type Simulated struct {
	Venue string
}
