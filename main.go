package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/quantave/backtester/config"
	"github.com/quantave/backtester/engine"
	"github.com/quantave/backtester/optimise"
)

var (
	configPath string
	outputPath string
	verbose    bool
)

func main() {
	app := cli.NewApp()
	app.Name = "backtester"
	app.Usage = "event-driven historical strategy backtesting"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to a run configuration file",
			Required:    true,
			Destination: &configPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "enable debug logging",
			Destination: &verbose,
		},
	}
	app.Before = func(_ *cli.Context) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:   "run",
			Usage:  "execute a single backtest run and print its summary",
			Action: runBacktest,
		},
		{
			Name:  "optimise",
			Usage: "sweep the configured parameter grid, one run per point",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "output",
					Aliases:     []string{"o"},
					Usage:       "CSV file to write one result row per run, defaults to stdout",
					Destination: &outputPath,
				},
			},
			Action: runSweep,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runBacktest(_ *cli.Context) error {
	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return err
	}
	bt, err := engine.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	if err = bt.Run(); err != nil {
		return err
	}
	stats, err := bt.SummaryStats()
	if err != nil {
		return err
	}
	for i := range stats {
		fmt.Printf("%s: %s\n", stats[i].Label, stats[i].Value)
	}
	return nil
}

func runSweep(_ *cli.Context) error {
	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	parameters := make([]optimise.Parameter, len(cfg.Sweep))
	for i := range cfg.Sweep {
		parameters[i] = optimise.Parameter{
			Name:   cfg.Sweep[i].Name,
			Values: cfg.Sweep[i].Values,
		}
	}
	sweep, err := optimise.New(parameters, func(overrides map[string]float64) (*engine.BackTest, error) {
		return engine.NewFromConfigWithOverrides(cfg, overrides)
	})
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		out, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer out.Close()
	}

	log.WithField("configurations", sweep.Combinations()).Info("starting sweep")
	_, err = sweep.Run(out)
	return err
}
