package order

import (
	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
)

// Order contains all details required to send an order to an execution handler
type Order struct {
	event.Base
	OrderType common.OrderType
	Quantity  int64
	Direction common.Side
}

// Event inherits common event interfaces along with extra functions related to handling orders
type Event interface {
	common.Event
	common.Directioner
	GetOrderType() common.OrderType
	GetQuantity() int64
	IsOrder() bool
}
