package csvbars

import "github.com/shopspring/decimal"

// timestampLayouts are tried in order when parsing the timestamp column
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

// record is one row of a bar source file
type record struct {
	Timestamp string          `csv:"timestamp"`
	Open      decimal.Decimal `csv:"open"`
	High      decimal.Decimal `csv:"high"`
	Low       decimal.Decimal `csv:"low"`
	Close     decimal.Decimal `csv:"close"`
	Volume    decimal.Decimal `csv:"volume"`
	AdjClose  decimal.Decimal `csv:"adj_close"`
}
