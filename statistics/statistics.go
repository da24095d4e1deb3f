// Package statistics calculates performance metrics from a run's equity curve
package statistics

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// CalculateResults computes total return, CAGR, annualised Sharpe ratio,
// maximum drawdown and drawdown duration from an equity curve sampled once
// per calendar tick. periodsPerYear annualises the Sharpe ratio and CAGR,
// riskFreeRate is an annual rate
func CalculateResults(curve []EquityPoint, periodsPerYear, riskFreeRate float64) (*Results, error) {
	if len(curve) < 2 {
		return nil, fmt.Errorf("%w, received %v", errNotEnoughDataPoints, len(curve))
	}
	initial := curve[0].Equity
	final := curve[len(curve)-1].Equity
	if !initial.IsPositive() {
		return nil, fmt.Errorf("%w, received %v", errInvalidInitialEquity, initial)
	}

	hundred := decimal.NewFromInt(100)
	resp := &Results{
		TotalReturn: final.Sub(initial).Div(initial).Mul(hundred),
	}

	returns := make([]float64, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		prev, _ := curve[i-1].Equity.Float64()
		cur, _ := curve[i].Equity.Float64()
		if prev != 0 {
			returns[i-1] = cur/prev - 1
		}
	}

	sharpe, err := sharpeRatio(returns, periodsPerYear, riskFreeRate)
	if err != nil {
		return nil, err
	}
	resp.Sharpe = decimal.NewFromFloat(sharpe)

	years := float64(len(curve)-1) / periodsPerYear
	if years > 0 {
		initialF, _ := initial.Float64()
		finalF, _ := final.Float64()
		if initialF > 0 && finalF > 0 {
			cagr := math.Pow(finalF/initialF, 1/years) - 1
			resp.CAGR = decimal.NewFromFloat(cagr * 100)
		}
	}

	resp.MaxDrawdown, resp.DrawdownDuration = calculateMaxDrawdown(curve)
	return resp, nil
}

// sharpeRatio annualises the mean excess return over its sample deviation.
// A flat return series has no deviation and scores zero, as does a single
// return, which has no sample deviation at all
func sharpeRatio(returns []float64, periodsPerYear, riskFreeRate float64) (float64, error) {
	if len(returns) < 2 {
		return 0, nil
	}
	excess := make([]float64, len(returns))
	for i := range returns {
		excess[i] = returns[i] - riskFreeRate/periodsPerYear
	}
	mean, err := stats.Mean(excess)
	if err != nil {
		return 0, err
	}
	stdDev, err := stats.StandardDeviationSample(excess)
	if err != nil {
		return 0, err
	}
	if stdDev == 0 {
		return 0, nil
	}
	return math.Sqrt(periodsPerYear) * mean / stdDev, nil
}

// calculateMaxDrawdown returns the deepest peak-to-trough decline as a
// positive percentage and the longest run of ticks spent below a high
// water mark
func calculateMaxDrawdown(curve []EquityPoint) (decimal.Decimal, int64) {
	var maxDrawdown decimal.Decimal
	var duration, longestDuration int64
	highWaterMark := curve[0].Equity
	hundred := decimal.NewFromInt(100)

	for i := 1; i < len(curve); i++ {
		if curve[i].Equity.GreaterThan(highWaterMark) {
			highWaterMark = curve[i].Equity
			duration = 0
			continue
		}
		duration++
		if duration > longestDuration {
			longestDuration = duration
		}
		if highWaterMark.IsPositive() {
			drawdown := highWaterMark.Sub(curve[i].Equity).Div(highWaterMark).Mul(hundred)
			if drawdown.GreaterThan(maxDrawdown) {
				maxDrawdown = drawdown
			}
		}
	}
	return maxDrawdown, longestDuration
}

// Summary returns the metrics as labelled values in reporting order
func (r *Results) Summary() []Stat {
	return []Stat{
		{Label: "total_return", Value: r.TotalReturn},
		{Label: "cagr", Value: r.CAGR},
		{Label: "sharpe", Value: r.Sharpe},
		{Label: "max_drawdown", Value: r.MaxDrawdown},
		{Label: "drawdown_duration", Value: decimal.NewFromInt(r.DrawdownDuration)},
	}
}
