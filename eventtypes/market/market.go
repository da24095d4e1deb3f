package market

import (
	"time"

	"github.com/quantave/backtester/eventtypes/event"
)

// New returns a market event for the calendar tick at t
func New(t time.Time, offset int64) *Market {
	return &Market{
		Base: event.Base{
			Time:   t,
			Offset: offset,
		},
	}
}

// IsMarket returns whether the event is a market update
func (m *Market) IsMarket() bool {
	return true
}
