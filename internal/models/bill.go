package models

import "github.com/shopspring/decimal"

// residualTolerance is the largest rounding difference shown as "no difference".
var residualTolerance = decimal.New(1, -2)

// Bill represents one billing cycle of a shared cost.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Name is the human-readable name for the bill (e.g., "Água", "Energia").
	Name string

	// Amount is the total cost of the cycle. Single currency, never negative.
	Amount decimal.Decimal

	// Period is the calendar window the bill covers.
	Period Interval
}

// PersonShare represents one person's calculated share of a bill.
// This is the output of the proration algorithm.
type PersonShare struct {
	PersonID   string
	PersonName string

	// Days is the number of days the person was present inside the bill period.
	Days int

	// Share is the amount this person owes, rounded to cents.
	Share decimal.Decimal

	// Percentage is the person's weight in [0, 100], rounded to 2 places.
	Percentage decimal.Decimal
}

// BillCalculation is the proration result for one bill.
type BillCalculation struct {
	Bill Bill

	// TotalDays is the length of the bill period in days.
	TotalDays int

	// PersonShares are sorted by person name.
	PersonShares []PersonShare
}

// TotalShare returns the sum of the rounded shares.
func (c BillCalculation) TotalShare() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.PersonShares {
		total = total.Add(s.Share)
	}
	return total
}

// Difference returns the bill amount not covered by the rounded shares.
// It is non-zero when per-person rounding does not add up to the amount,
// or when nobody was present during the bill period.
func (c BillCalculation) Difference() decimal.Decimal {
	return c.Bill.Amount.Sub(c.TotalShare())
}

// HasResidual reports whether the difference is large enough to be shown.
func (c BillCalculation) HasResidual() bool {
	return c.Difference().Abs().GreaterThan(residualTolerance)
}
