package market

import (
	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
)

// Market carries no payload, it marks that every tracked symbol has
// advanced one calendar tick and that signal generation should run
type Market struct {
	event.Base
}

// Event holds the functions required to handle a market update
type Event interface {
	common.Event
	IsMarket() bool
}
