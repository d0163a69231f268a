package calculator

import (
	"time"

	"github.com/mmynk/prorata/internal/models"
)

// calendarDay maps t to midnight UTC of the calendar date t has in its own
// location, so that two dates can be differenced without DST effects.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfDay returns midnight of t's calendar date in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the inclusive number of calendar days from start to end.
// Time of day is ignored: the same calendar day counts as 1.
// If end is before start the result is zero or negative; it is not clamped.
func DaysBetween(start, end time.Time) int {
	diff := calendarDay(end).Sub(calendarDay(start))
	return int(diff/(24*time.Hour)) + 1
}

// Intersect returns the overlap of two inclusive intervals at day level.
// Intervals that touch on the same calendar day overlap by one day.
// The returned bounds are truncated to the start of their day.
func Intersect(a, b models.Interval) (models.Interval, bool) {
	aStart, aEnd := calendarDay(a.Start), calendarDay(a.End)
	bStart, bEnd := calendarDay(b.Start), calendarDay(b.End)

	if aStart.After(bEnd) || bStart.After(aEnd) {
		return models.Interval{}, false
	}

	start := a.Start
	if bStart.After(aStart) {
		start = b.Start
	}
	end := a.End
	if bEnd.Before(aEnd) {
		end = b.End
	}

	return models.Interval{Start: startOfDay(start), End: startOfDay(end)}, true
}

// PersonDaysInBill returns how many days the person was present inside
// billPeriod, summed over all of the person's periods.
//
// Overlapping periods of the same person are not merged, so shared days
// are counted once per period.
func PersonDaysInBill(person models.Person, billPeriod models.Interval) int {
	total := 0
	for _, period := range person.Periods {
		overlap, ok := Intersect(period.Interval, billPeriod)
		if !ok {
			continue
		}
		total += DaysBetween(overlap.Start, overlap.End)
	}
	return total
}
