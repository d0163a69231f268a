// Package report renders bill calculations for people: a plain-text table
// and an XLSX workbook.
package report

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/prorata/internal/models"
)

const displayDate = "02/01/2006"

// Options control how dates and numbers are displayed.
type Options struct {
	// Location decides the calendar day shown for each date. Defaults to time.Local.
	Location *time.Location
	// Language formats numbers. Defaults to Brazilian Portuguese.
	Language language.Tag
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Language == language.Und {
		o.Language = language.BrazilianPortuguese
	}
	return o
}

type formatter struct {
	opts    Options
	printer *message.Printer
}

func newFormatter(opts Options) formatter {
	opts = opts.withDefaults()
	return formatter{opts: opts, printer: message.NewPrinter(opts.Language)}
}

func (f formatter) date(t time.Time) string {
	return t.In(f.opts.Location).Format(displayDate)
}

// period renders "dd/MM/yyyy até dd/MM/yyyy".
func (f formatter) period(iv models.Interval) string {
	return f.date(iv.Start) + " até " + f.date(iv.End)
}

func (f formatter) money(d decimal.Decimal) string {
	return f.printer.Sprintf("R$ %.2f", d.InexactFloat64())
}

func (f formatter) percent(d decimal.Decimal) string {
	return f.printer.Sprintf("%.2f%%", d.InexactFloat64())
}

func (f formatter) number(n int) string {
	return f.printer.Sprintf("%d", n)
}

// totals sums the days and percentages of a calculation.
func totals(calc models.BillCalculation) (days int, percentage decimal.Decimal) {
	percentage = decimal.Zero
	for _, s := range calc.PersonShares {
		days += s.Days
		percentage = percentage.Add(s.Percentage)
	}
	return days, percentage
}
