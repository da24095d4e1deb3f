// Package exchange simulates order execution against the replayed feed
package exchange

import (
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/fill"
	"github.com/quantave/backtester/eventtypes/order"
)

// New returns a simulated execution handler filling on the named venue
func New(venue string) *Simulated {
	if venue == "" {
		venue = DefaultVenue
	}
	return &Simulated{Venue: venue}
}

// ExecuteOrder transacts an order at the symbol's latest close and returns
// exactly one fill with the commission calculated from the fee schedule
func (e *Simulated) ExecuteOrder(o order.Event, d data.Handler) (fill.Event, error) {
	if o == nil || d == nil {
		return nil, common.ErrNilArguments
	}
	price, err := d.LatestField(o.GetSymbol(), data.Close)
	if err != nil {
		return nil, err
	}
	ts, err := d.LatestTimestamp(o.GetSymbol())
	if err != nil {
		return nil, err
	}

	fillCost := price.Mul(decimal.NewFromInt(o.GetQuantity()))
	f, err := fill.New(ts, o.GetSymbol(), e.Venue, o.GetQuantity(), o.GetDirection(), fillCost, nil)
	if err != nil {
		return nil, err
	}
	f.SetOffset(o.GetOffset())
	log.WithFields(log.Fields{
		"symbol":     f.GetSymbol(),
		"quantity":   f.GetQuantity(),
		"direction":  f.GetDirection(),
		"cost":       f.GetFillCost(),
		"commission": f.GetCommission(),
	}).Debug("order filled")
	return f, nil
}

// Reset returns the handler to defaults, the simulated venue holds no state
func (e *Simulated) Reset() {}
