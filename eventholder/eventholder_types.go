package eventholder

import "github.com/quantave/backtester/common"

// Holder contains the event queue for backtest processing. It is owned by
// exactly one backtest run and is never shared across runs
type Holder struct {
	Queue []common.Event
}

// EventHolder interface details what is expected of an event holder to perform
type EventHolder interface {
	Reset()
	AppendEvent(common.Event)
	NextEvent() common.Event
	Len() int
}
