// Package buyandhold is the simplest strategy, it raises one long signal per
// symbol as soon as that symbol has streamed its first bar and then stays out
// of the way
package buyandhold

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/market"
	"github.com/quantave/backtester/eventtypes/signal"
	"github.com/quantave/backtester/strategies/base"
)

// Name is the strategy name
const Name = "buyandhold"

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
	held map[string]bool
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return "Raises a single long signal per symbol on its first streamed bar"
}

// OnMarket handles a market update and returns a long signal for every symbol
// that streamed its first bar this tick
func (s *Strategy) OnMarket(m market.Event, d data.Handler) ([]signal.Event, error) {
	if m == nil || d == nil {
		return nil, common.ErrNilArguments
	}
	var resp []signal.Event
	for _, symbol := range d.Symbols() {
		if s.held[symbol] {
			continue
		}
		if _, err := d.LatestBar(symbol); err != nil {
			if errors.Is(err, data.ErrNoBarYet) {
				continue
			}
			return nil, err
		}
		sig, err := s.NewSignal(d, Name, symbol, common.Long, decimal.NewFromInt(1))
		if err != nil {
			return nil, err
		}
		s.held[symbol] = true
		resp = append(resp, sig)
	}
	return resp, nil
}

// SetDefaults clears any held state from a previous run
func (s *Strategy) SetDefaults() {
	s.held = make(map[string]bool)
}
