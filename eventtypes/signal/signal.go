package signal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
)

// New returns a validated signal event. The direction must belong to the
// signal set, long or short
func New(strategyID, symbol string, t time.Time, direction common.Side, strength decimal.Decimal) (*Signal, error) {
	if !direction.IsSignalSide() {
		return nil, fmt.Errorf("%w '%v' for signal", common.ErrInvalidSide, direction)
	}
	return &Signal{
		Base: event.Base{
			Time:   t,
			Symbol: symbol,
		},
		StrategyID: strategyID,
		Direction:  direction,
		Strength:   strength,
	}, nil
}

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// SetDirection sets the direction
func (s *Signal) SetDirection(d common.Side) {
	s.Direction = d
}

// GetDirection returns the direction
func (s *Signal) GetDirection() common.Side {
	return s.Direction
}

// GetStrategyID returns the identifier of the strategy that raised the signal
func (s *Signal) GetStrategyID() string {
	return s.StrategyID
}

// GetStrength returns the position sizing suggestion
func (s *Signal) GetStrength() decimal.Decimal {
	return s.Strength
}
