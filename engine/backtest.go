// Package engine runs the event loop that cascades market updates through
// strategy, portfolio and execution collaborators
package engine

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventholder"
	"github.com/quantave/backtester/eventtypes/fill"
	"github.com/quantave/backtester/eventtypes/market"
	"github.com/quantave/backtester/eventtypes/order"
	"github.com/quantave/backtester/eventtypes/signal"
	"github.com/quantave/backtester/exchange"
	"github.com/quantave/backtester/portfolio"
	"github.com/quantave/backtester/statistics"
	"github.com/quantave/backtester/strategies"
)

// New returns a backtest from its collaborators, with a fresh queue, zeroed
// counters and its own run id
func New(d data.Handler, s strategies.Handler, p portfolio.Handler, e exchange.ExecutionHandler, heartbeat time.Duration) (*BackTest, error) {
	if d == nil {
		return nil, fmt.Errorf("%w data", errNilHandler)
	}
	if s == nil {
		return nil, fmt.Errorf("%w strategy", errNilHandler)
	}
	if p == nil {
		return nil, fmt.Errorf("%w portfolio", errNilHandler)
	}
	if e == nil {
		return nil, fmt.Errorf("%w exchange", errNilHandler)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	s.SetDefaults()
	return &BackTest{
		RunID:      id,
		Data:       d,
		Strategy:   s,
		Portfolio:  p,
		Exchange:   e,
		EventQueue: &eventholder.Holder{},
		Heartbeat:  heartbeat,
	}, nil
}

// Run executes the backtest to feed exhaustion. Each tick advances the feed,
// pushes a single market event for all symbols and drains the queue to
// quiescence before pacing by the heartbeat. A collaborator error aborts
// the run
func (bt *BackTest) Run() error {
	log.WithFields(log.Fields{
		"id":       bt.RunID,
		"strategy": bt.Strategy.Name(),
	}).Info("running backtest")
	for bt.Data.Next() {
		bt.EventQueue.AppendEvent(market.New(bt.Data.CurrentTime(), bt.Data.Offset()))
		if err := bt.drainQueue(); err != nil {
			return err
		}
		if bt.Heartbeat > 0 {
			time.Sleep(bt.Heartbeat)
		}
	}
	log.WithFields(log.Fields{
		"id":      bt.RunID,
		"ticks":   bt.Data.Offset(),
		"signals": bt.Counters.Signals,
		"orders":  bt.Counters.Orders,
		"fills":   bt.Counters.Fills,
	}).Info("backtest complete")
	return nil
}

// drainQueue processes queued events in strict FIFO order until the cascade
// settles. Events raised while draining join the back of the same queue and
// are handled within the same tick
func (bt *BackTest) drainQueue() error {
	for e := bt.EventQueue.NextEvent(); e != nil; e = bt.EventQueue.NextEvent() {
		if err := bt.handleEvent(e); err != nil {
			return err
		}
	}
	return nil
}

// handleEvent routes an event by its type only, payload semantics belong to
// the collaborators
func (bt *BackTest) handleEvent(e common.Event) error {
	switch ev := e.(type) {
	case market.Event:
		return bt.processMarketEvent(ev)
	case signal.Event:
		return bt.processSignalEvent(ev)
	case order.Event:
		return bt.processOrderEvent(ev)
	case fill.Event:
		return bt.processFillEvent(ev)
	default:
		return fmt.Errorf("%w %T", errUnhandledEventType, e)
	}
}

func (bt *BackTest) processMarketEvent(ev market.Event) error {
	sigs, err := bt.Strategy.OnMarket(ev, bt.Data)
	if err != nil {
		return err
	}
	for i := range sigs {
		bt.EventQueue.AppendEvent(sigs[i])
	}
	return bt.Portfolio.UpdateTimeIndex(ev, bt.Data)
}

func (bt *BackTest) processSignalEvent(ev signal.Event) error {
	bt.Counters.Signals++
	orders, err := bt.Portfolio.OnSignal(ev, bt.Data)
	if err != nil {
		return err
	}
	for i := range orders {
		bt.EventQueue.AppendEvent(orders[i])
	}
	return nil
}

func (bt *BackTest) processOrderEvent(ev order.Event) error {
	bt.Counters.Orders++
	f, err := bt.Exchange.ExecuteOrder(ev, bt.Data)
	if err != nil {
		return err
	}
	bt.EventQueue.AppendEvent(f)
	return nil
}

func (bt *BackTest) processFillEvent(ev fill.Event) error {
	bt.Counters.Fills++
	return bt.Portfolio.OnFill(ev)
}

// SummaryStats returns the terminal portfolio's performance metrics
func (bt *BackTest) SummaryStats() ([]statistics.Stat, error) {
	return bt.Portfolio.SummaryStats()
}

// Reset returns the backtest to a pre-run state
func (bt *BackTest) Reset() {
	bt.EventQueue.Reset()
	bt.Data.Reset()
	bt.Portfolio.Reset()
	bt.Exchange.Reset()
	bt.Strategy.SetDefaults()
	bt.Counters = Counters{}
}
