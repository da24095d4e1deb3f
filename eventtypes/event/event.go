package event

import "time"

// GetOffset returns the calendar offset of the event
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the calendar offset of the event
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// GetTime returns the time of the event
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetSymbol returns the symbol the event relates to
func (b *Base) GetSymbol() string {
	return b.Symbol
}

// IsEvent returns whether the event is an event
func (b *Base) IsEvent() bool {
	return true
}
