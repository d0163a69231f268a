package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/mmynk/prorata/internal/models"
)

func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var testOptions = Options{Location: time.UTC, Language: language.BrazilianPortuguese}

func waterCalculation() models.BillCalculation {
	return models.BillCalculation{
		Bill: models.Bill{
			ID:     "agua",
			Name:   "Água",
			Amount: decimal.RequireFromString("310.00"),
			Period: models.Interval{Start: date(2024, 1, 1), End: date(2024, 1, 31)},
		},
		TotalDays: 31,
		PersonShares: []models.PersonShare{
			{PersonID: "a", PersonName: "Ana", Days: 10, Share: decimal.RequireFromString("100.00"), Percentage: decimal.RequireFromString("32.26")},
			{PersonID: "b", PersonName: "Bruno", Days: 21, Share: decimal.RequireFromString("210.00"), Percentage: decimal.RequireFromString("67.74")},
		},
	}
}

// nobodyHome has no shares, so the whole amount is a difference.
func nobodyHome() models.BillCalculation {
	return models.BillCalculation{
		Bill: models.Bill{
			ID:     "luz",
			Name:   "Luz",
			Amount: decimal.RequireFromString("80.00"),
			Period: models.Interval{Start: date(2024, 2, 1), End: date(2024, 2, 29)},
		},
		TotalDays:    29,
		PersonShares: []models.PersonShare{},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []models.BillCalculation{waterCalculation()}, testOptions); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Água", "01/01/2024 até 31/01/2024", "Pessoa", "Ana", "Bruno", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "diferença") {
		t.Errorf("expected no difference line, got:\n%s", out)
	}
	if strings.Index(out, "Ana") > strings.Index(out, "Bruno") {
		t.Error("expected people in calculation order")
	}
}

func TestWriteText_Difference(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []models.BillCalculation{waterCalculation(), nobodyHome()}, testOptions); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Nenhuma pessoa cadastrada.") {
		t.Errorf("expected empty-household note, got:\n%s", out)
	}
	if strings.Count(out, "(diferença: ") != 1 {
		t.Errorf("expected exactly one difference line, got:\n%s", out)
	}
	if strings.Index(out, "(diferença: ") < strings.Index(out, "Luz") {
		t.Error("expected the difference under the Luz section")
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil, Options{}); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Nenhuma conta") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNewWorkbook(t *testing.T) {
	f, err := NewWorkbook([]models.BillCalculation{waterCalculation(), nobodyHome()}, testOptions)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Resumo", "Água", "Luz"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d: expected %s, got %s", i, want[i], sheets[i])
		}
	}

	cells := []struct {
		sheet, cell, want string
	}{
		{"Água", "A1", "Água"},
		{"Água", "B2", "01/01/2024 até 31/01/2024"},
		{"Água", "A6", "Pessoa"},
		{"Água", "A7", "Ana"},
		{"Água", "A8", "Bruno"},
		{"Água", "A9", "Total"},
		{"Água", "A10", ""},
		{"Luz", "A7", "Total"},
		{"Luz", "A8", "Diferença"},
		{"Resumo", "A1", "Pessoa"},
		{"Resumo", "A2", "Ana"},
		{"Resumo", "A3", "Bruno"},
		{"Resumo", "A4", "Total"},
	}
	for _, c := range cells {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) failed: %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s: expected %q, got %q", c.sheet, c.cell, c.want, got)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a non-empty workbook")
	}
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"resumo": true}

	tests := []struct {
		input, want string
	}{
		{"Água", "Água"},
		{"Luz/Gás: jan?", "Luz Gás jan"},
		{"", "Conta"},
		{"Resumo", "Resumo (2)"},
		{"Água", "Água (2)"},
		{"Condomínio do edifício Jardim das Flores", "Condomínio do edifício Jardim d"},
		{"Condomínio do edifício Jardim das Flores", "Condomínio do edifício Jard (2)"},
	}
	for _, tt := range tests {
		got := sheetName(tt.input, used)
		if got != tt.want {
			t.Errorf("sheetName(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if n := len([]rune(got)); n > maxSheetName {
			t.Errorf("sheetName(%q) has %d characters", tt.input, n)
		}
	}
}
