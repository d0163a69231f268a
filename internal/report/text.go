package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmynk/prorata/internal/models"
)

// WriteText writes one section per calculation: a header with the bill name,
// period, length and amount, then a person | days | % | share table closed by
// a Total row. A "(diferença: R$ x)" line follows when the rounded shares
// miss the amount by more than one cent.
func WriteText(w io.Writer, calcs []models.BillCalculation, opts Options) error {
	f := newFormatter(opts)

	if len(calcs) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma conta cadastrada.")
		return err
	}

	for i, calc := range calcs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeSection(w, f, calc); err != nil {
			return fmt.Errorf("failed to write %s: %w", calc.Bill.Name, err)
		}
	}
	return nil
}

func writeSection(w io.Writer, f formatter, calc models.BillCalculation) error {
	if _, err := fmt.Fprintf(w, "%s\n%s · %s dias · %s\n\n",
		calc.Bill.Name,
		f.period(calc.Bill.Period),
		f.number(calc.TotalDays),
		f.money(calc.Bill.Amount),
	); err != nil {
		return err
	}

	if len(calc.PersonShares) == 0 {
		if _, err := fmt.Fprintln(w, "Nenhuma pessoa cadastrada."); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Pessoa\tDias\t%\tValor\t")
		for _, s := range calc.PersonShares {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", s.PersonName, f.number(s.Days), f.percent(s.Percentage), f.money(s.Share))
		}
		days, percentage := totals(calc)
		fmt.Fprintf(tw, "Total\t%s\t%s\t%s\t\n", f.number(days), f.percent(percentage), f.money(calc.TotalShare()))
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if calc.HasResidual() {
		if _, err := fmt.Fprintf(w, "(diferença: %s)\n", f.money(calc.Difference())); err != nil {
			return err
		}
	}
	return nil
}
