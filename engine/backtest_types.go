package engine

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"

	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventholder"
	"github.com/quantave/backtester/exchange"
	"github.com/quantave/backtester/portfolio"
	"github.com/quantave/backtester/strategies"
)

var (
	// errUnhandledEventType occurs when an event outside the closed
	// market, signal, order, fill set reaches the dispatch switch
	errUnhandledEventType = errors.New("unhandled event type")
	// errNilHandler occurs when a backtest is built with a missing collaborator
	errNilHandler = errors.New("nil handler")
)

// BackTest is one isolated run context. Every field is owned exclusively by
// this run, nothing is shared with or carried over from any other run
type BackTest struct {
	RunID      uuid.UUID
	Nickname   string
	Data       data.Handler
	Strategy   strategies.Handler
	Portfolio  portfolio.Handler
	Exchange   exchange.ExecutionHandler
	EventQueue *eventholder.Holder
	Heartbeat  time.Duration
	Counters   Counters
}

// Counters tallies how many of each downstream event type were processed
type Counters struct {
	Signals int64
	Orders  int64
	Fills   int64
}
