// Package fee calculates brokerage commission for simulated fills
package fee

import "github.com/shopspring/decimal"

// Calculate returns the commission in USD for transacting quantity units,
// based on the Interactive Brokers fee structure. It is stateless and never
// returns less than the minimum charge
func Calculate(quantity int64) decimal.Decimal {
	rate := tierOneRate
	if quantity > tierBoundary {
		rate = tierTwoRate
	}
	cost := rate.Mul(decimal.NewFromInt(quantity))
	if cost.LessThan(minimumCost) {
		return minimumCost
	}
	return cost
}
