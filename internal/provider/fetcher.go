package provider

import (
	"errors"
	"time"

	"CycleAnalyzer/internal/model"
)

// ErrNoData is returned when the upstream source has no prices for the
// requested symbol and range.
var ErrNoData = errors.New("no price data found")

// Fetcher defines the interface for fetching historical closing prices.
// Implementations return a flat, chronologically ordered series; any
// source-specific shape (null bars, nested columns) is normalized before
// the data leaves this package.
type Fetcher interface {
	FetchHistory(symbol string, start, end time.Time) ([]model.PricePoint, error)
	Name() string
}
