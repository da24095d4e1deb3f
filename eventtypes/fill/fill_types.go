package fill

import (
	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
)

// Fill is an event that details a transacted order as returned from the
// execution handler, including all costs incurred
type Fill struct {
	event.Base
	Exchange   string
	Quantity   int64
	Direction  common.Side
	FillCost   decimal.Decimal
	Commission decimal.Decimal
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	common.Directioner
	GetExchange() string
	GetQuantity() int64
	GetFillCost() decimal.Decimal
	GetCommission() decimal.Decimal
	IsFill() bool
}
