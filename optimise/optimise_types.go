package optimise

import (
	"errors"

	"github.com/gofrs/uuid"

	"github.com/quantave/backtester/engine"
	"github.com/quantave/backtester/statistics"
)

var (
	// errNoParameters occurs when a sweep is created without any
	// parameters to enumerate
	errNoParameters = errors.New("no sweep parameters set")
	// errNoValues occurs when a sweep parameter has no values
	errNoValues = errors.New("sweep parameter has no values")
	// errNilBuilder occurs when a sweep is created without a run builder
	errNilBuilder = errors.New("nil run builder")
)

// statLabels are the summary columns of every result row, in reporting order
var statLabels = []string{"total_return", "cagr", "sharpe", "max_drawdown", "drawdown_duration"}

// Parameter is one tunable strategy setting and the discrete values to
// evaluate it at. Parameters are enumerated as nested loops in declaration
// order, the first declared varies slowest
type Parameter struct {
	Name   string
	Values []float64
}

// Builder constructs a brand-new isolated run context for one grid point.
// It is invoked once per configuration and must never reuse state
type Builder func(overrides map[string]float64) (*engine.BackTest, error)

// Result associates one configuration's parameter values with the summary
// statistics of its completed run
type Result struct {
	RunID  uuid.UUID
	Values []float64
	Stats  []statistics.Stat
}

// Sweep evaluates a strategy across the cartesian product of its parameter
// ranges, one fully isolated sequential run per grid point
type Sweep struct {
	parameters []Parameter
	builder    Builder
}
