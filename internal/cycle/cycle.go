package cycle

import (
	"errors"
	"fmt"

	"CycleAnalyzer/internal/model"
)

var (
	ErrInsufficientData = errors.New("not enough price points in range")
	ErrInvalidPrice     = errors.New("non-positive starting price")
)

// Result is one computed cycle: its window plus boundary prices and growth.
type Result struct {
	Window     Window
	StartPrice float64
	EndPrice   float64
	Growth     float64 // percent, full precision
}

// Compute derives the percentage growth for one window from the provider's
// price series. The boundary prices are the first and last points the
// provider returned, which may be shifted from the nominal window dates by
// weekends and holidays.
func Compute(w Window, points []model.PricePoint) (Result, error) {
	if len(points) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(points))
	}
	startPrice := points[0].Close
	endPrice := points[len(points)-1].Close
	if startPrice <= 0 {
		return Result{}, fmt.Errorf("%w: %.4f", ErrInvalidPrice, startPrice)
	}
	return Result{
		Window:     w,
		StartPrice: startPrice,
		EndPrice:   endPrice,
		Growth:     (endPrice - startPrice) / startPrice * 100,
	}, nil
}
