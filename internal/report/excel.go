package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/prorata/internal/calculator"
	"github.com/mmynk/prorata/internal/models"
)

const (
	summarySheet   = "Resumo"
	maxSheetName   = 31
	moneyFormat    = "#,##0.00"
	tableHeaderRow = 6
)

var sheetNameReplacer = strings.NewReplacer(
	":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// sheetName makes a valid, unused worksheet name out of a bill name.
func sheetName(name string, used map[string]bool) string {
	base := strings.Join(strings.Fields(sheetNameReplacer.Replace(name)), " ")
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Conta"
	}
	base = truncate(base, maxSheetName)

	candidate := base
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(base, maxSheetName-utf8.RuneCountInString(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

type workbook struct {
	file    *excelize.File
	display formatter
	bold    int
	money   int
	total   int
}

// NewWorkbook builds an XLSX workbook with a "Resumo" sheet holding the
// per-person totals followed by one sheet per bill.
func NewWorkbook(calcs []models.BillCalculation, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()
	wb := &workbook{file: f, display: newFormatter(opts)}

	var err error
	if wb.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	format := moneyFormat
	if wb.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &format}); err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	if wb.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &format,
		Border:       []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	}); err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	calc := calculator.New(wb.display.opts.Language)
	if err := wb.writeSummary(calc.Summarize(calcs)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", summarySheet, err)
	}

	used := map[string]bool{strings.ToLower(summarySheet): true}
	for _, c := range calcs {
		name := sheetName(c.Bill.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := wb.writeBill(name, c); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return f, nil
}

// row writes values from column A on.
func (wb *workbook) row(sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.file.SetSheetRow(sheet, cell, &values)
}

func (wb *workbook) style(sheet string, fromCol, toCol, row, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return err
	}
	return wb.file.SetCellStyle(sheet, from, to, style)
}

func (wb *workbook) writeSummary(totals []calculator.PersonTotal) error {
	const sheet = summarySheet
	if err := wb.row(sheet, 1, "Pessoa", "Dias", "Contas", "Total"); err != nil {
		return err
	}
	if err := wb.style(sheet, 1, 4, 1, wb.bold); err != nil {
		return err
	}

	r := 2
	grand := 0.0
	for _, t := range totals {
		if err := wb.row(sheet, r, t.PersonName, t.Days, t.Bills, t.Total.InexactFloat64()); err != nil {
			return err
		}
		if err := wb.style(sheet, 4, 4, r, wb.money); err != nil {
			return err
		}
		grand += t.Total.InexactFloat64()
		r++
	}

	if err := wb.row(sheet, r, "Total", "", "", grand); err != nil {
		return err
	}
	if err := wb.style(sheet, 1, 4, r, wb.total); err != nil {
		return err
	}
	return wb.file.SetColWidth(sheet, "A", "A", 24)
}

func (wb *workbook) writeBill(sheet string, calc models.BillCalculation) error {
	header := [][]any{
		{calc.Bill.Name},
		{"Período", wb.display.period(calc.Bill.Period)},
		{"Dias", calc.TotalDays},
		{"Valor", calc.Bill.Amount.InexactFloat64()},
	}
	for i, values := range header {
		if err := wb.row(sheet, i+1, values...); err != nil {
			return err
		}
	}
	if err := wb.style(sheet, 1, 1, 1, wb.bold); err != nil {
		return err
	}
	if err := wb.style(sheet, 2, 2, 4, wb.money); err != nil {
		return err
	}

	r := tableHeaderRow
	if err := wb.row(sheet, r, "Pessoa", "Dias", "%", "Valor"); err != nil {
		return err
	}
	if err := wb.style(sheet, 1, 4, r, wb.bold); err != nil {
		return err
	}
	r++

	for _, s := range calc.PersonShares {
		if err := wb.row(sheet, r, s.PersonName, s.Days, s.Percentage.InexactFloat64(), s.Share.InexactFloat64()); err != nil {
			return err
		}
		if err := wb.style(sheet, 3, 4, r, wb.money); err != nil {
			return err
		}
		r++
	}

	days, percentage := totals(calc)
	if err := wb.row(sheet, r, "Total", days, percentage.InexactFloat64(), calc.TotalShare().InexactFloat64()); err != nil {
		return err
	}
	if err := wb.style(sheet, 1, 4, r, wb.total); err != nil {
		return err
	}

	if calc.HasResidual() {
		r++
		if err := wb.row(sheet, r, "Diferença", "", "", calc.Difference().InexactFloat64()); err != nil {
			return err
		}
		if err := wb.style(sheet, 4, 4, r, wb.money); err != nil {
			return err
		}
	}
	return wb.file.SetColWidth(sheet, "A", "A", 24)
}
