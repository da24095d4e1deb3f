// Package portfolio converts strategy signals into sized orders and tracks
// the resulting positions, cash and equity curve
package portfolio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/quantave/backtester/common"
	"github.com/quantave/backtester/data"
	"github.com/quantave/backtester/eventtypes/fill"
	"github.com/quantave/backtester/eventtypes/market"
	"github.com/quantave/backtester/eventtypes/order"
	"github.com/quantave/backtester/eventtypes/signal"
	"github.com/quantave/backtester/statistics"
)

// New returns a portfolio with starting funds and a fixed default order size.
// periodsPerYear and riskFreeRate feed the summary statistics
func New(initialCapital decimal.Decimal, defaultOrderSize int64, periodsPerYear, riskFreeRate float64) (*Portfolio, error) {
	if !initialCapital.IsPositive() {
		return nil, fmt.Errorf("%w, received %v", errInvalidInitialCapital, initialCapital)
	}
	if defaultOrderSize <= 0 {
		return nil, fmt.Errorf("%w, received %v", errInvalidOrderSize, defaultOrderSize)
	}
	return &Portfolio{
		initialCapital:   initialCapital,
		defaultOrderSize: defaultOrderSize,
		periodsPerYear:   periodsPerYear,
		riskFreeRate:     riskFreeRate,
		cash:             initialCapital,
		positions:        make(map[string]int64),
	}, nil
}

// OnSignal sizes a signal into at most one market order. The order quantity
// is the signal strength multiplied by the default order size, rounded down,
// a non-positive result raises no order
func (p *Portfolio) OnSignal(s signal.Event, _ data.Handler) ([]order.Event, error) {
	if s == nil {
		return nil, common.ErrNilEvent
	}
	quantity := s.GetStrength().Mul(decimal.NewFromInt(p.defaultOrderSize)).IntPart()
	if quantity <= 0 {
		return nil, nil
	}

	var direction common.Side
	switch s.GetDirection() {
	case common.Long:
		direction = common.Buy
	case common.Short:
		direction = common.Sell
	default:
		return nil, fmt.Errorf("%w '%v' for signal", common.ErrInvalidSide, s.GetDirection())
	}

	o, err := order.New(s.GetSymbol(), common.MarketOrder, quantity, direction)
	if err != nil {
		return nil, err
	}
	o.Time = s.GetTime()
	o.SetOffset(s.GetOffset())
	log.WithFields(log.Fields{
		"symbol":    o.GetSymbol(),
		"type":      o.GetOrderType(),
		"quantity":  o.GetQuantity(),
		"direction": o.GetDirection(),
	}).Debug("order raised")
	return []order.Event{o}, nil
}

// OnFill updates positions and cash from a transacted order
func (p *Portfolio) OnFill(f fill.Event) error {
	if f == nil {
		return common.ErrNilEvent
	}
	switch f.GetDirection() {
	case common.Buy:
		p.positions[f.GetSymbol()] += f.GetQuantity()
		p.cash = p.cash.Sub(f.GetFillCost()).Sub(f.GetCommission())
	case common.Sell:
		p.positions[f.GetSymbol()] -= f.GetQuantity()
		p.cash = p.cash.Add(f.GetFillCost()).Sub(f.GetCommission())
	default:
		return fmt.Errorf("%w '%v' for fill", common.ErrInvalidSide, f.GetDirection())
	}
	return nil
}

// UpdateTimeIndex marks every position to the latest close and appends the
// total to the equity curve. It runs once per market update
func (p *Portfolio) UpdateTimeIndex(m market.Event, d data.Handler) error {
	if m == nil || d == nil {
		return common.ErrNilArguments
	}
	total := p.cash
	for symbol, quantity := range p.positions {
		if quantity == 0 {
			continue
		}
		price, err := d.LatestField(symbol, data.Close)
		if err != nil {
			if errors.Is(err, data.ErrNoBarYet) {
				continue
			}
			return err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(quantity)))
	}
	p.equity = append(p.equity, statistics.EquityPoint{
		Time:   m.GetTime(),
		Equity: total,
	})
	return nil
}

// SummaryStats returns the run's performance metrics in reporting order
func (p *Portfolio) SummaryStats() ([]statistics.Stat, error) {
	if len(p.equity) == 0 {
		return nil, errNoEquityHistory
	}
	results, err := statistics.CalculateResults(p.equity, p.periodsPerYear, p.riskFreeRate)
	if err != nil {
		return nil, err
	}
	return results.Summary(), nil
}

// Cash returns uninvested funds
func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

// Position returns the held quantity for the symbol, negative when short
func (p *Portfolio) Position(symbol string) int64 {
	return p.positions[symbol]
}

// EquityCurve returns a copy of the recorded equity history
func (p *Portfolio) EquityCurve() []statistics.EquityPoint {
	resp := make([]statistics.EquityPoint, len(p.equity))
	copy(resp, p.equity)
	return resp
}

// Reset returns the portfolio to its starting state
func (p *Portfolio) Reset() {
	p.cash = p.initialCapital
	p.positions = make(map[string]int64)
	p.equity = nil
}
