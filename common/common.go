package common

// Valid returns whether the side belongs to the signal set or the order set
func (s Side) Valid() bool {
	switch s {
	case Long, Short, Buy, Sell:
		return true
	default:
		return false
	}
}

// IsOrderSide returns whether the side can be placed on an order or fill
func (s Side) IsOrderSide() bool {
	return s == Buy || s == Sell
}

// IsSignalSide returns whether the side can be raised by a strategy
func (s Side) IsSignalSide() bool {
	return s == Long || s == Short
}

// Valid returns whether the order type is in the enumerated set
func (o OrderType) Valid() bool {
	return o == MarketOrder || o == LimitOrder
}
