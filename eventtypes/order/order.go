package order

import (
	"fmt"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
)

// New returns a validated order event. Quantity must not be negative and the
// direction must belong to the order set, buy or sell
func New(symbol string, orderType common.OrderType, quantity int64, direction common.Side) (*Order, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w, received %v", common.ErrInvalidQuantity, quantity)
	}
	if !orderType.Valid() {
		return nil, fmt.Errorf("%w '%v'", common.ErrInvalidOrderType, orderType)
	}
	if !direction.IsOrderSide() {
		return nil, fmt.Errorf("%w '%v' for order", common.ErrInvalidSide, direction)
	}
	return &Order{
		Base: event.Base{
			Symbol: symbol,
		},
		OrderType: orderType,
		Quantity:  quantity,
		Direction: direction,
	}, nil
}

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// SetDirection sets the side of the order
func (o *Order) SetDirection(d common.Side) {
	o.Direction = d
}

// GetDirection returns the side of the order
func (o *Order) GetDirection() common.Side {
	return o.Direction
}

// GetOrderType returns whether the order executes at market or at a limit
func (o *Order) GetOrderType() common.OrderType {
	return o.OrderType
}

// GetQuantity returns the quantity to transact
func (o *Order) GetQuantity() int64 {
	return o.Quantity
}
