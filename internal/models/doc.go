// Package models defines the core domain models for prorata.
//
// # Models
//
//   - Interval: an inclusive range of calendar days
//   - Person: someone sharing the household, with the periods they were present
//   - Bill: one billing cycle of a shared recurring cost (water, power, rent)
//   - PersonShare: calculated share of a bill for one person
//   - BillCalculation: the full proration result for one bill
//
// PersonShare and BillCalculation are derived values. They are recomputed
// from People and Bills on every change and never persisted on their own.
//
// # Design Principles
//
// 1. **Day granularity**: intervals are compared by calendar date, time of day is ignored
// 2. **Exact money**: amounts, shares and percentages use decimal.Decimal
// 3. **Avoid circular references**: shares reference people by ID, not by pointer
// 4. **Read-only inputs**: the calculator never mutates the models it is given
package models
