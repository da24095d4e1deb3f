package common

import (
	"errors"
	"time"
)

const (
	// Long is a signal to open or hold an upwards position
	Long Side = "LONG"
	// Short is a signal to open or hold a downwards position
	Short Side = "SHORT"
	// Buy is an order or fill side for purchasing
	Buy Side = "BUY"
	// Sell is an order or fill side for selling
	Sell Side = "SELL"

	// MarketOrder executes at the prevailing price
	MarketOrder OrderType = "MARKET"
	// LimitOrder executes at a set price
	LimitOrder OrderType = "LIMIT"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were passed in
	// when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it shouldn't have
	ErrNilEvent = errors.New("nil event received")
	// ErrInvalidQuantity occurs when an order or fill is created with a negative quantity
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	// ErrInvalidSide occurs when a side is outside the enumerated set for the event
	ErrInvalidSide = errors.New("invalid side")
	// ErrInvalidOrderType occurs when an order type is neither market nor limit
	ErrInvalidOrderType = errors.New("invalid order type")
)

// Event interface implemented by every event routed through the backtest queue
type Event interface {
	GetOffset() int64
	SetOffset(int64)
	GetTime() time.Time
	GetSymbol() string
	IsEvent() bool
}

// Side denotes the direction of a signal, order or fill
type Side string

// OrderType denotes how an order is to be executed
type OrderType string

// Directioner dictates the side of an event
type Directioner interface {
	SetDirection(Side)
	GetDirection() Side
}
