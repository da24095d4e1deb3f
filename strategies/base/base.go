// Package base provides shared implementation details for strategies
package base

import (
	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/signal"
)

// Strategy is the base implementation for strategies that do not require
// every Handler function to do something
type Strategy struct{}

// SetCustomSettings rejects any custom settings, strategies that accept
// settings override this
func (s *Strategy) SetCustomSettings(settings map[string]interface{}) error {
	if len(settings) > 0 {
		return ErrCustomSettingsUnsupported
	}
	return nil
}

// NewSignal builds a signal for the symbol stamped with the feed's most
// recent bar time and offset
func (s *Strategy) NewSignal(d data.Handler, strategyID, symbol string, direction common.Side, strength decimal.Decimal) (*signal.Signal, error) {
	ts, err := d.LatestTimestamp(symbol)
	if err != nil {
		return nil, err
	}
	sig, err := signal.New(strategyID, symbol, ts, direction, strength)
	if err != nil {
		return nil, err
	}
	sig.SetOffset(d.Offset())
	return sig, nil
}
