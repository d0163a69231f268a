// Package api defines the wire messages of the prorata.v1.ProrationService
// and its Connect handler and client.
//
// Dates are "YYYY-MM-DD" strings and amounts are decimal strings.
package api

import "github.com/shopspring/decimal"

// Period is one contiguous stay of a person, both days inclusive.
type Period struct {
	ID    string `json:"id,omitempty"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Person is someone who shares the household bills.
type Person struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Periods []Period `json:"periods"`
}

// Bill is one billing cycle of a shared cost.
type Bill struct {
	ID     string          `json:"id,omitempty"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Start  string          `json:"start"`
	End    string          `json:"end"`
}

// PersonShare is one person's part of a bill.
type PersonShare struct {
	PersonID   string          `json:"person_id"`
	PersonName string          `json:"person_name"`
	Days       int             `json:"days"`
	Share      decimal.Decimal `json:"share"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BillCalculation is the proration of one bill.
type BillCalculation struct {
	Bill         Bill            `json:"bill"`
	TotalDays    int             `json:"total_days"`
	PersonShares []PersonShare   `json:"person_shares"`
	TotalShare   decimal.Decimal `json:"total_share"`
	Difference   decimal.Decimal `json:"difference"`
	HasResidual  bool            `json:"has_residual"`
}

// PersonTotal is one person's total across all bills.
type PersonTotal struct {
	PersonID   string          `json:"person_id"`
	PersonName string          `json:"person_name"`
	Days       int             `json:"days"`
	Bills      int             `json:"bills"`
	Total      decimal.Decimal `json:"total"`
}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	People []Person `json:"people"`
}

type AddPersonRequest struct {
	Name    string   `json:"name"`
	Periods []Period `json:"periods"`
}

type AddPersonResponse struct {
	Person Person `json:"person"`
}

// UpdatePersonPeriodsRequest replaces all periods of a person.
// Periods without an id get a new one.
type UpdatePersonPeriodsRequest struct {
	PersonID string   `json:"person_id"`
	Periods  []Period `json:"periods"`
}

type UpdatePersonPeriodsResponse struct {
	Person Person `json:"person"`
}

type RemovePersonRequest struct {
	PersonID string `json:"person_id"`
}

type RemovePersonResponse struct{}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []Bill `json:"bills"`
}

type AddBillRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Start  string          `json:"start"`
	End    string          `json:"end"`
}

type AddBillResponse struct {
	Bill        Bill            `json:"bill"`
	Calculation BillCalculation `json:"calculation"`
}

type RemoveBillRequest struct {
	BillID string `json:"bill_id"`
}

type RemoveBillResponse struct{}

type ListCalculationsRequest struct{}

type ListCalculationsResponse struct {
	Calculations []BillCalculation `json:"calculations"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Totals []PersonTotal `json:"totals"`
	// Total is the sum of all allocated shares.
	Total decimal.Decimal `json:"total"`
}

// CalculateBillRequest carries everything needed to prorate a bill;
// nothing is read from or written to the household.
type CalculateBillRequest struct {
	Bill   Bill     `json:"bill"`
	People []Person `json:"people"`
}

type CalculateBillResponse struct {
	Calculation BillCalculation `json:"calculation"`
}
