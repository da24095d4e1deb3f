// Package optimise runs a backtest per point of a hyperparameter grid and
// collects one result row per run
package optimise

import (
	"encoding/csv"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a sweep over the declared parameters using builder to
// construct each run
func New(parameters []Parameter, builder Builder) (*Sweep, error) {
	if len(parameters) == 0 {
		return nil, errNoParameters
	}
	for i := range parameters {
		if len(parameters[i].Values) == 0 {
			return nil, fmt.Errorf("%w: %v", errNoValues, parameters[i].Name)
		}
	}
	if builder == nil {
		return nil, errNilBuilder
	}
	return &Sweep{
		parameters: parameters,
		builder:    builder,
	}, nil
}

// Combinations returns how many grid points the sweep will evaluate
func (s *Sweep) Combinations() int {
	total := 1
	for i := range s.parameters {
		total *= len(s.parameters[i].Values)
	}
	return total
}

// Run evaluates every grid point in declaration order, building a fresh run
// context for each, running it to exhaustion and capturing its summary
// statistics. One CSV row is written and flushed per completed run so an
// interrupted sweep preserves all completed rows. A failing run aborts the
// remainder of the sweep
func (s *Sweep) Run(w io.Writer) ([]Result, error) {
	out := csv.NewWriter(w)
	header := make([]string, 0, len(s.parameters)+len(statLabels))
	for i := range s.parameters {
		header = append(header, s.parameters[i].Name)
	}
	header = append(header, statLabels...)
	if err := out.Write(header); err != nil {
		return nil, err
	}
	out.Flush()

	total := s.Combinations()
	results := make([]Result, 0, total)
	for i := 0; i < total; i++ {
		values := s.valuesAt(i)
		overrides := make(map[string]float64, len(s.parameters))
		for j := range s.parameters {
			overrides[s.parameters[j].Name] = values[j]
		}

		bt, err := s.builder(overrides)
		if err != nil {
			return results, err
		}
		log.WithFields(log.Fields{
			"id":            bt.RunID,
			"configuration": fmt.Sprintf("%v/%v", i+1, total),
			"overrides":     overrides,
		}).Info("running sweep point")
		if err = bt.Run(); err != nil {
			return results, err
		}
		stats, err := bt.SummaryStats()
		if err != nil {
			return results, err
		}

		row := make([]string, 0, len(values)+len(stats))
		for j := range values {
			row = append(row, fmt.Sprintf("%v", values[j]))
		}
		for j := range stats {
			row = append(row, stats[j].Value.String())
		}
		if err = out.Write(row); err != nil {
			return results, err
		}
		out.Flush()
		if err = out.Error(); err != nil {
			return results, err
		}

		results = append(results, Result{
			RunID:  bt.RunID,
			Values: values,
			Stats:  stats,
		})
	}
	return results, nil
}

// valuesAt maps a flat configuration index onto one value per parameter,
// equivalent to nested loops with the first declared parameter outermost
func (s *Sweep) valuesAt(index int) []float64 {
	values := make([]float64, len(s.parameters))
	stride := s.Combinations()
	for i := range s.parameters {
		stride /= len(s.parameters[i].Values)
		values[i] = s.parameters[i].Values[(index/stride)%len(s.parameters[i].Values)]
	}
	return values
}
