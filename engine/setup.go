package engine

import (
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/quantave/backtester/config"
	"github.com/quantave/backtester/data/csvbars"
	"github.com/quantave/backtester/exchange"
	"github.com/quantave/backtester/portfolio"
	"github.com/quantave/backtester/strategies"
)

// NewFromConfig builds a fully wired run context from a validated config
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	return NewFromConfigWithOverrides(cfg, nil)
}

// NewFromConfigWithOverrides builds a run context with strategy settings
// overridden for one parameter sweep point. Every component is constructed
// fresh, no state survives from any previous run
func NewFromConfigWithOverrides(cfg *config.Config, overrides map[string]float64) (*BackTest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	feed, err := csvbars.NewHistoricFeed(cfg.DataDirectory, cfg.Symbols)
	if err != nil {
		return nil, err
	}

	strat, err := strategies.LoadStrategyByName(cfg.Strategy.Name)
	if err != nil {
		return nil, err
	}
	port, err := portfolio.New(
		decimal.NewFromFloat(cfg.InitialCapital),
		cfg.DefaultOrderSize,
		cfg.PeriodsPerYear,
		cfg.RiskFreeRate,
	)
	if err != nil {
		return nil, err
	}

	bt, err := New(feed, strat, port, exchange.New(cfg.Venue), cfg.Heartbeat)
	if err != nil {
		return nil, err
	}

	// applied after New so the defaults it installs cannot clobber them
	settings := make(map[string]interface{}, len(cfg.Strategy.CustomSettings)+len(overrides))
	for k, v := range cfg.Strategy.CustomSettings {
		settings[k] = v
	}
	for k, v := range overrides {
		settings[k] = v
	}
	if err = strat.SetCustomSettings(settings); err != nil {
		return nil, err
	}

	bt.Nickname = cfg.Nickname
	log.WithFields(log.Fields{
		"id":       bt.RunID,
		"nickname": bt.Nickname,
		"symbols":  cfg.Symbols,
		"strategy": strat.Name(),
	}).Debug("run context built")
	return bt, nil
}
