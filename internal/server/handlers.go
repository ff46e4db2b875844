package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"CycleAnalyzer/internal/analysis"
	"CycleAnalyzer/internal/cycle"
	"CycleAnalyzer/internal/provider"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "cycle-analyzer",
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := parseAnalysisRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.analysis.Analyze(*req)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePriceSeries(w http.ResponseWriter, r *http.Request) {
	req, err := parseAnalysisRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.analysis.PriceSeries(*req)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSearchSymbols(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.universe.Search(r.URL.Query().Get("q")))
}

// parseAnalysisRequest extracts and type-checks the shared query
// parameters. Semantic validation (unit membership, date layout) belongs
// to the analysis service.
func parseAnalysisRequest(r *http.Request) (*analysis.Request, error) {
	q := r.URL.Query()

	symbol := q.Get("symbol")
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	durationValue, err := strconv.Atoi(q.Get("duration_value"))
	if err != nil {
		return nil, fmt.Errorf("duration_value must be an integer: got %q", q.Get("duration_value"))
	}
	cycles, err := strconv.Atoi(q.Get("cycles"))
	if err != nil {
		return nil, fmt.Errorf("cycles must be an integer: got %q", q.Get("cycles"))
	}

	assetType := q.Get("asset_type")
	if assetType == "" {
		assetType = "stock"
	}
	riskFreeRate := 0.0
	if v := q.Get("risk_free_rate"); v != "" {
		riskFreeRate, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("risk_free_rate must be a number: got %q", v)
		}
	}

	return &analysis.Request{
		Symbol:        symbol,
		DurationValue: durationValue,
		DurationUnit:  q.Get("duration_unit"),
		Cycles:        cycles,
		EndDate:       q.Get("end_date"),
		AssetType:     assetType,
		RiskFreeRate:  riskFreeRate,
	}, nil
}

// writeAnalysisError maps the analysis error taxonomy onto HTTP statuses:
// malformed requests are 400, ranges the source has no usable data for are
// 404, everything else is an upstream failure.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cycle.ErrInvalidUnit),
		errors.Is(err, cycle.ErrInvalidDuration),
		errors.Is(err, cycle.ErrNoCycles),
		errors.Is(err, analysis.ErrInvalidDate):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, provider.ErrNoData),
		errors.Is(err, cycle.ErrInsufficientData),
		errors.Is(err, cycle.ErrInvalidPrice):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.log.Error().Err(err).Msg("analysis failed")
		s.writeError(w, http.StatusBadGateway, "upstream data source failure: "+err.Error())
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"detail": message})
}
