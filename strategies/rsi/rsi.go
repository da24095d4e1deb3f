// Package rsi raises signals when the relative strength index of a symbol's
// closing prices crosses configured oversold or overbought thresholds
package rsi

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gct-ta/indicators"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/market"
	"github.com/quantave/backtester/eventtypes/signal"
	"github.com/quantave/backtester/strategies/base"
)

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
	rsiPeriod int
	rsiLow    float64
	rsiHigh   float64
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
// be it definition of terms or to highlight its purpose
func (s *Strategy) Description() string {
	return description
}

// OnMarket handles a market update and raises a long signal for oversold
// symbols and a short signal for overbought ones. Symbols without enough
// streamed history are skipped, insufficient history is not an error
func (s *Strategy) OnMarket(m market.Event, d data.Handler) ([]signal.Event, error) {
	if m == nil || d == nil {
		return nil, common.ErrNilArguments
	}
	var resp []signal.Event
	for _, symbol := range d.Symbols() {
		closes, err := d.LatestFields(symbol, data.Close, s.rsiPeriod*4)
		if err != nil {
			return nil, err
		}
		if len(closes) <= s.rsiPeriod {
			continue
		}
		values := make([]float64, len(closes))
		for i := range closes {
			values[i], _ = closes[i].Float64()
		}
		rsiValues := indicators.RSI(values, s.rsiPeriod)
		latest := rsiValues[len(rsiValues)-1]

		var direction common.Side
		switch {
		case latest >= s.rsiHigh:
			direction = common.Short
		case latest <= s.rsiLow:
			direction = common.Long
		default:
			continue
		}
		sig, err := s.NewSignal(d, Name, symbol, direction, decimal.NewFromInt(1))
		if err != nil {
			return nil, err
		}
		resp = append(resp, sig)
	}
	return resp, nil
}

// SetCustomSettings allows a config file to customise the rsi thresholds
func (s *Strategy) SetCustomSettings(settings map[string]interface{}) error {
	for k, v := range settings {
		var value float64
		switch n := v.(type) {
		case float64:
			value = n
		case int:
			value = float64(n)
		default:
			return fmt.Errorf("%w unrecognised value for %v: %v", base.ErrCustomSettingsUnsupported, k, v)
		}
		switch k {
		case rsiPeriodKey:
			if value < 1 {
				return fmt.Errorf("%w %v must be positive, received %v", base.ErrCustomSettingsUnsupported, k, value)
			}
			s.rsiPeriod = int(value)
		case rsiLowKey:
			s.rsiLow = value
		case rsiHighKey:
			s.rsiHigh = value
		default:
			return fmt.Errorf("%w unrecognised setting %v", base.ErrCustomSettingsUnsupported, k)
		}
	}
	return nil
}

// SetDefaults sets the default strategy settings
func (s *Strategy) SetDefaults() {
	s.rsiPeriod = defaultPeriod
	s.rsiLow = defaultLow
	s.rsiHigh = defaultHigh
}
