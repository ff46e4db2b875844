package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"CycleAnalyzer/internal/cycle"
	"CycleAnalyzer/internal/provider"
)

// ErrInvalidDate flags an end date that matches neither accepted layout.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// AssetTypeFund marks instruments whose summary includes a CAGR.
const AssetTypeFund = "mf"

// Request carries the query inputs for one analysis.
type Request struct {
	Symbol        string
	DurationValue int
	DurationUnit  string
	Cycles        int
	EndDate       string
	AssetType     string
	RiskFreeRate  float64
}

// CycleReport is one cycle in the response breakdown.
type CycleReport struct {
	Cycle         int     `json:"cycle"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	GrowthPercent float64 `json:"growth_percent"`
}

// Report is the serialized analysis summary.
type Report struct {
	Symbol           string        `json:"symbol"`
	AverageGrowthPct float64       `json:"average_growth_percent"`
	StdDevPct        float64       `json:"std_dev_percent"`
	SharpeRatio      float64       `json:"sharpe_ratio"`
	RiskFreeRateUsed float64       `json:"risk_free_rate_used"`
	Results          []CycleReport `json:"results"`
	CAGRPercent      *float64      `json:"cagr_percent,omitempty"`
}

// CycleBound marks one window's nominal boundaries for chart annotation.
type CycleBound struct {
	Cycle int    `json:"cycle"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SeriesReport is the charting payload: the contiguous price history
// spanning every cycle, plus the window boundaries.
type SeriesReport struct {
	Symbol string       `json:"symbol"`
	Dates  []string     `json:"dates"`
	Prices []float64    `json:"prices"`
	Cycles []CycleBound `json:"cycles"`
}

// Service runs cycle analyses against a price fetcher. Cycles are fetched
// and computed strictly sequentially; the first failing cycle aborts the
// whole request.
type Service struct {
	fetcher provider.Fetcher
	log     zerolog.Logger
}

// NewService creates a new analysis service.
func NewService(fetcher provider.Fetcher, log zerolog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		log:     log.With().Str("component", "analysis").Logger(),
	}
}

// ParseDate parses an end date string: YYYY-MM-DD, or MM/DD/YYYY when the
// value contains a slash.
func ParseDate(s string) (time.Time, error) {
	layout := "2006-01-02"
	if strings.Contains(s, "/") {
		layout = "01/02/2006"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: got %q", ErrInvalidDate, s)
	}
	return t, nil
}

// validate checks the request shape shared by Analyze and PriceSeries.
// All validation happens before any data is fetched.
func (s *Service) validate(req Request) (cycle.Duration, time.Time, error) {
	unit, err := cycle.ParseUnit(req.DurationUnit)
	if err != nil {
		return cycle.Duration{}, time.Time{}, err
	}
	if req.DurationValue <= 0 {
		return cycle.Duration{}, time.Time{}, fmt.Errorf("%w: got %d", cycle.ErrInvalidDuration, req.DurationValue)
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return cycle.Duration{}, time.Time{}, err
	}
	return cycle.Duration{Value: req.DurationValue, Unit: unit}, end, nil
}

// Analyze slices the symbol's history into backward-stepped cycles and
// aggregates the per-cycle growth into the summary report.
func (s *Service) Analyze(req Request) (*Report, error) {
	d, end, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	windows := cycle.Windows(end, d, req.Cycles)
	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: cycles must be positive, got %d", cycle.ErrNoCycles, req.Cycles)
	}

	results := make([]cycle.Result, 0, len(windows))
	for _, w := range windows {
		points, err := s.fetcher.FetchHistory(req.Symbol, w.Start, w.End)
		if err != nil {
			return nil, fmt.Errorf("cycle %d (%s to %s): %w", w.Index, fmtDate(w.Start), fmtDate(w.End), err)
		}
		res, err := cycle.Compute(w, points)
		if err != nil {
			return nil, fmt.Errorf("cycle %d (%s to %s): %w", w.Index, fmtDate(w.Start), fmtDate(w.End), err)
		}
		results = append(results, res)
	}

	summary, err := cycle.Summarize(results, req.RiskFreeRate)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Symbol:           strings.ToUpper(req.Symbol),
		AverageGrowthPct: round2(summary.AverageGrowth),
		StdDevPct:        round2(summary.StdDev),
		SharpeRatio:      round3(summary.Ratio),
		RiskFreeRateUsed: req.RiskFreeRate,
		Results:          make([]CycleReport, 0, len(results)),
	}
	for _, r := range results {
		report.Results = append(report.Results, CycleReport{
			Cycle:         r.Window.Index,
			From:          fmtDate(r.Window.Start),
			To:            fmtDate(r.Window.End),
			GrowthPercent: round2(r.Growth),
		})
	}

	if req.AssetType == AssetTypeFund {
		// Windows are generated newest first, so the chronologically
		// earliest cycle is the last result and the latest is the first.
		oldestStart := results[len(results)-1].StartPrice
		newestEnd := results[0].EndPrice
		if cagr, ok := cycle.CAGR(oldestStart, newestEnd, d.Years(req.Cycles)); ok {
			v := round2(cagr)
			report.CAGRPercent = &v
		}
	}

	s.log.Info().
		Str("symbol", report.Symbol).
		Int("cycles", len(results)).
		Float64("avg_growth", report.AverageGrowthPct).
		Msg("analysis complete")
	return report, nil
}

// PriceSeries fetches one contiguous history spanning the full multi-cycle
// range and re-derives the window boundaries for annotation. This is a
// second, independent pass over the data; it does not reuse per-cycle
// fetch results.
func (s *Service) PriceSeries(req Request) (*SeriesReport, error) {
	d, end, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	windows := cycle.Windows(end, d, req.Cycles)
	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: cycles must be positive, got %d", cycle.ErrNoCycles, req.Cycles)
	}

	earliest := windows[len(windows)-1].Start
	points, err := s.fetcher.FetchHistory(req.Symbol, earliest, end)
	if err != nil {
		return nil, fmt.Errorf("series %s to %s: %w", fmtDate(earliest), fmtDate(end), err)
	}

	report := &SeriesReport{
		Symbol: strings.ToUpper(req.Symbol),
		Dates:  make([]string, 0, len(points)),
		Prices: make([]float64, 0, len(points)),
		Cycles: make([]CycleBound, 0, len(windows)),
	}
	for _, p := range points {
		report.Dates = append(report.Dates, fmtDate(p.Date))
		report.Prices = append(report.Prices, p.Close)
	}
	for _, w := range windows {
		report.Cycles = append(report.Cycles, CycleBound{
			Cycle: w.Index,
			Start: fmtDate(w.Start),
			End:   fmtDate(w.End),
		})
	}
	return report, nil
}

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
