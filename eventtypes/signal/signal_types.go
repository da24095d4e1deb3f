package signal

import (
	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
)

// Signal is raised by a strategy and acted upon by a portfolio.
// Strength is an adjustment factor suggestion used to scale
// quantity at the portfolio level, useful for pairs strategies
type Signal struct {
	event.Base
	StrategyID string
	Direction  common.Side
	Strength   decimal.Decimal
}

// Event handler is used for getting trade signal details
type Event interface {
	common.Event
	common.Directioner
	GetStrategyID() string
	GetStrength() decimal.Decimal
	IsSignal() bool
}
