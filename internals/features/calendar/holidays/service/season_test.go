package service

import (
	"testing"
	"time"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestIsPeakSeason(t *testing.T) {
	peakStart := date(2024, 3, 15)
	peakEnd := date(2024, 6, 28)

	tests := []struct {
		name         string
		start, end   time.Time
		want         bool
	}{
		{"fully inside peak", date(2024, 6, 15), date(2024, 6, 18), true},
		{"partial overlap ends after peak", date(2024, 6, 15), date(2024, 7, 5), false},
		{"partial overlap starts before peak", date(2024, 3, 1), date(2024, 3, 20), false},
		{"entirely before peak", date(2024, 1, 1), date(2024, 1, 2), false},
		{"entirely after peak", date(2024, 8, 1), date(2024, 8, 10), false},
		{"exactly the peak range", date(2024, 3, 15), date(2024, 6, 28), true},
		{"starts on peak start", date(2024, 3, 15), date(2024, 4, 1), true},
		{"ends on peak end", date(2024, 6, 1), date(2024, 6, 28), true},
		{"spans the whole peak and beyond", date(2024, 3, 1), date(2024, 7, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPeakSeason(tt.start, tt.end, peakStart, peakEnd); got != tt.want {
				t.Errorf("IsPeakSeason(%s, %s) = %v, want %v",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsPeakSeason_ZeroLengthBoundary(t *testing.T) {
	// a one-day holiday matching a one-day peak season exactly is peak
	day := date(2024, 6, 1)
	if !IsPeakSeason(day, day, day, day) {
		t.Fatal("zero-length holiday on the exact peak boundary must classify as peak")
	}
}
