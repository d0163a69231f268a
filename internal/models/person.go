package models

import "time"

// Interval is an inclusive range of calendar days.
// Start is expected to be on or before End; the calculator does not enforce it.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Period is one window in which a person was present.
type Period struct {
	// ID is the unique identifier for the period (UUID format).
	ID string

	Interval
}

// Person represents someone who shares the bills.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Name is the display name, also used to order calculation results.
	Name string

	// Periods are the attendance windows of this person.
	// Periods of the same person are expected not to overlap; overlapping
	// days are counted once per period.
	Periods []Period
}
