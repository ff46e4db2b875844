package cycle

import (
	"errors"
	"fmt"
	"time"
)

// Unit is a supported cycle-length unit.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitMonths Unit = "months"
	UnitYears  Unit = "years"
)

var (
	ErrInvalidUnit     = errors.New("invalid duration_unit, must be one of days, months, years")
	ErrInvalidDuration = errors.New("duration_value must be positive")
)

// ParseUnit validates a unit string.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitDays, UnitMonths, UnitYears:
		return Unit(s), nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidUnit, s)
}

// Duration is a cycle length: a positive magnitude plus a calendar unit.
type Duration struct {
	Value int
	Unit  Unit
}

// Years converts count cycles of this duration to fractional years.
func (d Duration) Years(count int) float64 {
	total := float64(d.Value * count)
	switch d.Unit {
	case UnitMonths:
		return total / 12
	case UnitDays:
		return total / 365.25
	default:
		return total
	}
}

// Window is one backward-stepped analysis period. Index 1 is the most
// recent cycle, ending at the caller's reference end date.
type Window struct {
	Index int
	Start time.Time
	End   time.Time
}

// Windows generates count contiguous, non-overlapping windows ending at
// referenceEnd, newest first. A count <= 0 yields an empty slice; the
// caller is expected to reject that before aggregating.
func Windows(referenceEnd time.Time, d Duration, count int) []Window {
	if count <= 0 {
		return nil
	}
	windows := make([]Window, 0, count)
	for i := 0; i < count; i++ {
		end := stepBack(referenceEnd, d, i)
		start := stepBack(end, d, 1)
		windows = append(windows, Window{Index: i + 1, Start: start, End: end})
	}
	return windows
}

// stepBack moves t backward by n durations. Month and year steps clamp the
// day-of-month to the target month's last valid day (Mar 31 minus one month
// is Feb 28, not Mar 3), unlike time.AddDate which normalizes overflow.
func stepBack(t time.Time, d Duration, n int) time.Time {
	amount := d.Value * n
	switch d.Unit {
	case UnitDays:
		return t.AddDate(0, 0, -amount)
	case UnitMonths:
		return addMonthsClamped(t, -amount)
	case UnitYears:
		return addMonthsClamped(t, -12*amount)
	}
	return t
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, day := t.Date()
	idx := y*12 + int(m) - 1 + months
	year := idx / 12
	month := time.Month(idx%12 + 1)
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
