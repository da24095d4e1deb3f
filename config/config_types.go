package config

import (
	"errors"
	"time"
)

var (
	// errNoDataDirectory occurs when a config does not state where bar
	// sources live
	errNoDataDirectory = errors.New("no data directory set")
	// errNoSymbols occurs when a config has no symbols to backtest
	errNoSymbols = errors.New("no symbols set")
	// errInvalidInitialCapital occurs when starting funds are not positive
	errInvalidInitialCapital = errors.New("initial capital must be positive")
	// errInvalidOrderSize occurs when the default order size is not positive
	errInvalidOrderSize = errors.New("default order size must be positive")
	// errNoStrategy occurs when a config does not name a strategy
	errNoStrategy = errors.New("no strategy set")
	// errInvalidHeartbeat occurs when the pacing delay is negative
	errInvalidHeartbeat = errors.New("heartbeat cannot be negative")
	// errEmptySweepParameter occurs when a sweep parameter has no values
	errEmptySweepParameter = errors.New("sweep parameter has no values")
)

// Config defines one backtest run, or the template for a parameter sweep
type Config struct {
	Nickname         string           `mapstructure:"nickname"`
	DataDirectory    string           `mapstructure:"data-directory"`
	Symbols          []string         `mapstructure:"symbols"`
	InitialCapital   float64          `mapstructure:"initial-capital"`
	DefaultOrderSize int64            `mapstructure:"default-order-size"`
	Heartbeat        time.Duration    `mapstructure:"heartbeat"`
	PeriodsPerYear   float64          `mapstructure:"periods-per-year"`
	RiskFreeRate     float64          `mapstructure:"risk-free-rate"`
	Venue            string           `mapstructure:"venue"`
	Strategy         StrategySettings `mapstructure:"strategy"`
	Sweep            []SweepParameter `mapstructure:"sweep"`
}

// StrategySettings names the strategy to run along with any custom settings
// it supports
type StrategySettings struct {
	Name           string                 `mapstructure:"name"`
	CustomSettings map[string]interface{} `mapstructure:"custom-settings"`
}

// SweepParameter is one tunable strategy setting with the discrete values to
// evaluate. Declaration order is enumeration order, the first declared
// parameter varies slowest
type SweepParameter struct {
	Name   string    `mapstructure:"name"`
	Values []float64 `mapstructure:"values"`
}
