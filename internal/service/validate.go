package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/prorata/internal/calculator"
	"github.com/mmynk/prorata/internal/models"
)

// Validation and lookup errors returned by Household.
var (
	ErrEmptyName      = errors.New("name is required")
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidDate    = errors.New("invalid date")
	ErrPersonNotFound = errors.New("person not found")
	ErrBillNotFound   = errors.New("bill not found")
)

// cleanName trims name and rejects it if nothing is left.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return nil
}

// validateInterval rejects unset dates and intervals whose start falls on a
// later calendar day than their end. The calculator accepts such intervals,
// so they have to be stopped here.
func validateInterval(iv models.Interval) error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidPeriod)
	}
	if calculator.DaysBetween(iv.Start, iv.End) < 1 {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidPeriod,
			iv.Start.Format("2006-01-02"), iv.End.Format("2006-01-02"))
	}
	return nil
}
