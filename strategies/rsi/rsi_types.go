package rsi

const (
	// Name is the strategy name
	Name         = "rsi"
	rsiPeriodKey = "rsi-period"
	rsiLowKey    = "rsi-low"
	rsiHighKey   = "rsi-high"
	description  = `The relative strength index is a technical indicator charting the current and historical strength or weakness of a market based on the closing prices of a recent trading period`

	defaultPeriod = 14
	defaultLow    = 30
	defaultHigh   = 70
)
