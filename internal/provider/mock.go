package provider

import (
	"time"

	"CycleAnalyzer/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Points is returned for every range when ByRange is nil.
	Points []model.PricePoint
	// Err, when set, fails every call.
	Err error
	// ByRange, when set, derives the series from the requested range.
	ByRange func(symbol string, start, end time.Time) ([]model.PricePoint, error)
	// Calls counts FetchHistory invocations.
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol string, start, end time.Time) ([]model.PricePoint, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ByRange != nil {
		return m.ByRange(symbol, start, end)
	}
	return m.Points, nil
}
