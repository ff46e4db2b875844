package model

import "time"

// PricePoint is a single closing-price observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}
