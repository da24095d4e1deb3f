package eventholder

import "github.com/quantave/backtester/common"

// Reset returns the struct to defaults
func (h *Holder) Reset() {
	h.Queue = nil
}

// AppendEvent adds and event to the queue
func (h *Holder) AppendEvent(e common.Event) {
	if e == nil {
		return
	}
	h.Queue = append(h.Queue, e)
}

// NextEvent removes the current event and returns the next event in the queue,
// nil once the queue is empty
func (h *Holder) NextEvent() common.Event {
	if len(h.Queue) == 0 {
		return nil
	}
	e := h.Queue[0]
	h.Queue = h.Queue[1:]
	return e
}

// Len returns the number of queued events
func (h *Holder) Len() int {
	return len(h.Queue)
}
