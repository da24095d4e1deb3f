package event

import "time"

// Base is the underlying event across all event types
// it shares the time and offset of the calendar tick it was raised on
type Base struct {
	Offset int64
	Time   time.Time
	Symbol string
}
