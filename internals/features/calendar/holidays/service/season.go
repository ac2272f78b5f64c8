// internals/features/calendar/holidays/service/season.go
package service

import "time"

// IsPeakSeason reports whether a holiday falls inside a property's peak
// season. Peak only when BOTH holiday endpoints lie within
// [peakStart, peakEnd], inclusive on both ends; any partial overlap is
// treated as off season. Caller guarantees peakStart <= peakEnd.
func IsPeakSeason(holidayStart, holidayEnd, peakStart, peakEnd time.Time) bool {
	return !holidayStart.Before(peakStart) && !holidayStart.After(peakEnd) &&
		!holidayEnd.Before(peakStart) && !holidayEnd.After(peakEnd)
}
