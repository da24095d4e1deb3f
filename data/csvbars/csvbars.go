// Package csvbars loads historical bar sources from per-symbol CSV files
package csvbars

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/quantave/backtester/data"
)

// LoadFile reads one symbol's bar series from a CSV file with the columns
// timestamp, open, high, low, close, volume, adj_close. Unreadable files and
// unparsable values wrap data.ErrMalformedSource
func LoadFile(path string) ([]data.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", data.ErrMalformedSource, err)
	}
	defer f.Close()

	var records []*record
	if err = gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", data.ErrMalformedSource, path, err)
	}

	bars := make([]data.Bar, len(records))
	for i := range records {
		ts, err := parseTimestamp(records[i].Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: %v row %v: %v", data.ErrMalformedSource, path, i+1, err)
		}
		bars[i] = data.Bar{
			Time:     ts,
			Open:     records[i].Open,
			High:     records[i].High,
			Low:      records[i].Low,
			Close:    records[i].Close,
			Volume:   records[i].Volume,
			AdjClose: records[i].AdjClose,
		}
	}
	return bars, nil
}

// LoadDirectory reads one bar series per symbol from dir, expecting a
// <SYMBOL>.csv file for each
func LoadDirectory(dir string, symbols []string) (map[string][]data.Bar, error) {
	series := make(map[string][]data.Bar, len(symbols))
	for _, s := range symbols {
		path := filepath.Join(dir, s+".csv")
		bars, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"symbol": s,
			"bars":   len(bars),
		}).Debug("loaded bar source")
		series[s] = bars
	}
	return series, nil
}

// NewHistoricFeed loads every symbol's CSV source from dir and reindexes
// them onto the combined calendar
func NewHistoricFeed(dir string, symbols []string) (*data.Historic, error) {
	series, err := LoadDirectory(dir, symbols)
	if err != nil {
		return nil, err
	}
	return data.NewHistoric(series)
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
