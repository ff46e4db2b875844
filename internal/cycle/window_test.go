package cycle

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindows_ThreeYearlyCycles(t *testing.T) {
	windows := Windows(date(2024, 1, 1), Duration{Value: 1, Unit: UnitYears}, 3)
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	want := []struct {
		index      int
		start, end time.Time
	}{
		{1, date(2023, 1, 1), date(2024, 1, 1)},
		{2, date(2022, 1, 1), date(2023, 1, 1)},
		{3, date(2021, 1, 1), date(2022, 1, 1)},
	}
	for i, w := range want {
		got := windows[i]
		if got.Index != w.index || !got.Start.Equal(w.start) || !got.End.Equal(w.end) {
			t.Errorf("window %d: got {%d %s %s}, want {%d %s %s}",
				i, got.Index, got.Start.Format("2006-01-02"), got.End.Format("2006-01-02"),
				w.index, w.start.Format("2006-01-02"), w.end.Format("2006-01-02"))
		}
	}
}

func TestWindows_ContiguousNonOverlapping(t *testing.T) {
	windows := Windows(date(2024, 6, 15), Duration{Value: 3, Unit: UnitMonths}, 4)
	for i := 1; i < len(windows); i++ {
		if !windows[i].End.Equal(windows[i-1].Start) {
			t.Errorf("window %d end %s != window %d start %s",
				i+1, windows[i].End.Format("2006-01-02"),
				i, windows[i-1].Start.Format("2006-01-02"))
		}
	}
}

func TestWindows_NonPositiveCount(t *testing.T) {
	if got := Windows(date(2024, 1, 1), Duration{Value: 1, Unit: UnitYears}, 0); len(got) != 0 {
		t.Errorf("expected empty for count 0, got %d windows", len(got))
	}
	if got := Windows(date(2024, 1, 1), Duration{Value: 1, Unit: UnitYears}, -2); len(got) != 0 {
		t.Errorf("expected empty for negative count, got %d windows", len(got))
	}
}

func TestStepBack_MonthEndClamping(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		d    Duration
		n    int
		want time.Time
	}{
		{"Mar 31 minus one month clamps to Feb 28", date(2023, 3, 31), Duration{1, UnitMonths}, 1, date(2023, 2, 28)},
		{"Mar 31 minus one month in leap year clamps to Feb 29", date(2024, 3, 31), Duration{1, UnitMonths}, 1, date(2024, 2, 29)},
		{"Jan 31 minus two months clamps to Nov 30", date(2024, 1, 31), Duration{1, UnitMonths}, 2, date(2023, 11, 30)},
		{"Dec 31 minus one month is Nov 30", date(2023, 12, 31), Duration{1, UnitMonths}, 1, date(2023, 11, 30)},
		{"Feb 29 minus one year clamps to Feb 28", date(2024, 2, 29), Duration{1, UnitYears}, 1, date(2023, 2, 28)},
		{"plain day arithmetic untouched", date(2024, 3, 1), Duration{30, UnitDays}, 1, date(2024, 1, 31)},
		{"year rollover through January", date(2024, 1, 15), Duration{2, UnitMonths}, 1, date(2023, 11, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stepBack(tt.from, tt.d, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	for _, valid := range []string{"days", "months", "years"} {
		if _, err := ParseUnit(valid); err != nil {
			t.Errorf("ParseUnit(%q): unexpected error %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "weeks", "Days", "year", "fortnights"} {
		if _, err := ParseUnit(invalid); err == nil {
			t.Errorf("ParseUnit(%q): expected error", invalid)
		}
	}
}

func TestDuration_Years(t *testing.T) {
	tests := []struct {
		d     Duration
		count int
		want  float64
	}{
		{Duration{1, UnitYears}, 7, 7},
		{Duration{6, UnitMonths}, 4, 2},
		{Duration{1, UnitMonths}, 6, 0.5},
		{Duration{365, UnitDays}, 1, 365.0 / 365.25},
	}
	for _, tt := range tests {
		if got := tt.d.Years(tt.count); got != tt.want {
			t.Errorf("%d %s x%d: got %v, want %v", tt.d.Value, tt.d.Unit, tt.count, got, tt.want)
		}
	}
}
