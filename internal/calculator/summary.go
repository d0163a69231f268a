package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/prorata/internal/models"
)

// PersonTotal aggregates one person's results across several bills.
type PersonTotal struct {
	PersonID   string
	PersonName string
	Days       int             // Days present, summed over all bills
	Bills      int             // Number of bills with at least one day of presence
	Total      decimal.Decimal // Sum of the rounded shares
}

// Summarize rolls calculations up into one total per person using Default.
func Summarize(calcs []models.BillCalculation) []PersonTotal {
	return Default.Summarize(calcs)
}

// Summarize rolls calculations up into one total per person, ordered by name.
// People are identified by ID; the first name seen for an ID is kept.
func (c *Calculator) Summarize(calcs []models.BillCalculation) []PersonTotal {
	totals := make(map[string]*PersonTotal)
	var order []string

	for _, calc := range calcs {
		for _, share := range calc.PersonShares {
			total, exists := totals[share.PersonID]
			if !exists {
				total = &PersonTotal{
					PersonID:   share.PersonID,
					PersonName: share.PersonName,
					Total:      decimal.Zero,
				}
				totals[share.PersonID] = total
				order = append(order, share.PersonID)
			}

			total.Days += share.Days
			total.Total = total.Total.Add(share.Share)
			if share.Days > 0 {
				total.Bills++
			}
		}
	}

	result := make([]PersonTotal, 0, len(order))
	for _, id := range order {
		result = append(result, *totals[id])
	}

	cmp := c.compareNames()
	slices.SortStableFunc(result, func(a, b PersonTotal) int {
		return cmp(a.PersonName, b.PersonName)
	})
	return result
}
