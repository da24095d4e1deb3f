package fill

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/eventtypes/event"
	"github.com/quantave/backtester/exchange/fee"
)

// New returns a validated fill event. When commission is nil it is calculated
// from the quantity using the brokerage fee schedule, a supplied commission is
// stored as-is and never recalculated
func New(t time.Time, symbol, exchange string, quantity int64, direction common.Side, fillCost decimal.Decimal, commission *decimal.Decimal) (*Fill, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w, received %v", common.ErrInvalidQuantity, quantity)
	}
	if !direction.IsOrderSide() {
		return nil, fmt.Errorf("%w '%v' for fill", common.ErrInvalidSide, direction)
	}
	f := &Fill{
		Base: event.Base{
			Time:   t,
			Symbol: symbol,
		},
		Exchange:  exchange,
		Quantity:  quantity,
		Direction: direction,
		FillCost:  fillCost,
	}
	if commission != nil {
		f.Commission = *commission
	} else {
		f.Commission = fee.Calculate(quantity)
	}
	return f, nil
}

// IsFill returns whether the event is a fill event
func (f *Fill) IsFill() bool {
	return true
}

// SetDirection sets the direction of the fill
func (f *Fill) SetDirection(d common.Side) {
	f.Direction = d
}

// GetDirection returns the direction of the fill
func (f *Fill) GetDirection() common.Side {
	return f.Direction
}

// GetExchange returns the venue the order was filled on
func (f *Fill) GetExchange() string {
	return f.Exchange
}

// GetQuantity returns the transacted quantity
func (f *Fill) GetQuantity() int64 {
	return f.Quantity
}

// GetFillCost returns the holdings value transacted
func (f *Fill) GetFillCost() decimal.Decimal {
	return f.FillCost
}

// GetCommission returns the commission charged on the fill
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}
