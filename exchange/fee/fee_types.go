package fee

import "github.com/shopspring/decimal"

// Interactive Brokers US API directed order fee schedule, in USD.
// Exchange and ECN fees are not included
var (
	minimumCost  = decimal.NewFromFloat(1.3)
	tierOneRate  = decimal.NewFromFloat(0.013)
	tierTwoRate  = decimal.NewFromFloat(0.008)
	tierBoundary = int64(500)
)
