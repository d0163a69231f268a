// Package calculator implements the proration engine: it splits each bill
// among people in proportion to the days they were present during the
// bill period.
//
// The engine is a set of pure functions. It performs no I/O, keeps no state
// and never returns an error: degenerate input (no people, nobody present,
// inverted intervals) yields zero shares or non-positive day counts.
// Validation belongs to the caller.
package calculator

import (
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/prorata/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Calculator prorates bills and orders results by person name using the
// collation rules of its language.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	lang language.Tag
}

// New creates a Calculator that sorts names according to lang.
func New(lang language.Tag) *Calculator {
	return &Calculator{lang: lang}
}

// Default sorts names with Brazilian Portuguese collation.
var Default = New(language.BrazilianPortuguese)

// Language returns the collation language of the calculator.
func (c *Calculator) Language() language.Tag {
	return c.lang
}

// CalculateBill prorates bill among people using Default.
func CalculateBill(bill models.Bill, people []models.Person) models.BillCalculation {
	return Default.CalculateBill(bill, people)
}

// CalculateBill computes each person's share of the bill.
//
// Algorithm:
//   - days(p) = days p was present inside the bill period
//   - weight  = sum of days(p) over everyone (person-days, not calendar days)
//   - share(p) = amount × days(p) / weight, percentage(p) = 100 × days(p) / weight
//   - both rounded to 2 places, half away from zero; zero when weight is 0
//
// Every person appears in the result, including those with zero days.
// Rounded shares may not add up to the amount; see BillCalculation.Difference.
func (c *Calculator) CalculateBill(bill models.Bill, people []models.Person) models.BillCalculation {
	totalDays := DaysBetween(bill.Period.Start, bill.Period.End)

	shares := make([]models.PersonShare, 0, len(people))
	totalPersonDays := 0
	for _, person := range people {
		days := PersonDaysInBill(person, bill.Period)
		totalPersonDays += days
		shares = append(shares, models.PersonShare{
			PersonID:   person.ID,
			PersonName: person.Name,
			Days:       days,
			Share:      decimal.Zero,
			Percentage: decimal.Zero,
		})
	}

	if totalPersonDays > 0 {
		weight := decimal.NewFromInt(int64(totalPersonDays))
		for i := range shares {
			days := decimal.NewFromInt(int64(shares[i].Days))
			// Multiply before dividing so exact splits stay exact.
			shares[i].Share = bill.Amount.Mul(days).Div(weight).Round(2)
			shares[i].Percentage = days.Mul(hundred).Div(weight).Round(2)
		}
	}

	c.sortShares(shares)

	return models.BillCalculation{
		Bill:         bill,
		TotalDays:    totalDays,
		PersonShares: shares,
	}
}

// CalculateAll prorates every bill against the same people.
func (c *Calculator) CalculateAll(bills []models.Bill, people []models.Person) []models.BillCalculation {
	calcs := make([]models.BillCalculation, 0, len(bills))
	for _, bill := range bills {
		calcs = append(calcs, c.CalculateBill(bill, people))
	}
	return calcs
}

// compareNames returns a comparison function for names. A collator is not
// safe for concurrent use, so every sort gets its own.
func (c *Calculator) compareNames() func(a, b string) int {
	col := collate.New(c.lang)
	return col.CompareString
}

func (c *Calculator) sortShares(shares []models.PersonShare) {
	cmp := c.compareNames()
	slices.SortStableFunc(shares, func(a, b models.PersonShare) int {
		return cmp(a.PersonName, b.PersonName)
	})
}
