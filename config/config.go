// Package config loads and validates backtest run configuration
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultOrderSize      = 100
	defaultPeriodsPerYear = 252
)

// ReadConfigFromFile loads a run configuration from a file path, accepting
// any format viper understands
func ReadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("default-order-size", defaultOrderSize)
	v.SetDefault("periods-per-year", defaultPeriodsPerYear)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks all config settings
func (c *Config) Validate() error {
	if c.DataDirectory == "" {
		return errNoDataDirectory
	}
	if len(c.Symbols) == 0 {
		return errNoSymbols
	}
	if c.InitialCapital <= 0 {
		return fmt.Errorf("%w, received %v", errInvalidInitialCapital, c.InitialCapital)
	}
	if c.DefaultOrderSize <= 0 {
		return fmt.Errorf("%w, received %v", errInvalidOrderSize, c.DefaultOrderSize)
	}
	if c.Heartbeat < 0 {
		return fmt.Errorf("%w, received %v", errInvalidHeartbeat, c.Heartbeat)
	}
	if c.Strategy.Name == "" {
		return errNoStrategy
	}
	if c.PeriodsPerYear <= 0 {
		c.PeriodsPerYear = defaultPeriodsPerYear
	}
	for i := range c.Sweep {
		if len(c.Sweep[i].Values) == 0 {
			return fmt.Errorf("%w: %v", errEmptySweepParameter, c.Sweep[i].Name)
		}
	}
	return nil
}
