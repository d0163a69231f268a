package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/prorata/internal/calculator"
	"github.com/mmynk/prorata/internal/models"
	"github.com/mmynk/prorata/pkg/api"
)

const dateLayout = "2006-01-02"

// parseDate reads a YYYY-MM-DD date as midnight in loc. Full RFC 3339
// timestamps are accepted too and moved to loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t.In(loc), nil
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

func parseInterval(start, end string, loc *time.Location) (models.Interval, error) {
	s, err := parseDate(start, loc)
	if err != nil {
		return models.Interval{}, fmt.Errorf("start: %w", err)
	}
	e, err := parseDate(end, loc)
	if err != nil {
		return models.Interval{}, fmt.Errorf("end: %w", err)
	}
	return models.Interval{Start: s, End: e}, nil
}

func periodsFromAPI(periods []api.Period, loc *time.Location) ([]models.Period, error) {
	out := make([]models.Period, len(periods))
	for i, p := range periods {
		iv, err := parseInterval(p.Start, p.End, loc)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", i+1, err)
		}
		out[i] = models.Period{ID: p.ID, Interval: iv}
	}
	return out, nil
}

func personToAPI(p models.Person, loc *time.Location) api.Person {
	periods := make([]api.Period, len(p.Periods))
	for i, period := range p.Periods {
		periods[i] = api.Period{
			ID:    period.ID,
			Start: formatDate(period.Start, loc),
			End:   formatDate(period.End, loc),
		}
	}
	return api.Person{ID: p.ID, Name: p.Name, Periods: periods}
}

func billToAPI(b models.Bill, loc *time.Location) api.Bill {
	return api.Bill{
		ID:     b.ID,
		Name:   b.Name,
		Amount: b.Amount,
		Start:  formatDate(b.Period.Start, loc),
		End:    formatDate(b.Period.End, loc),
	}
}

func calculationToAPI(c models.BillCalculation, loc *time.Location) api.BillCalculation {
	shares := make([]api.PersonShare, len(c.PersonShares))
	for i, s := range c.PersonShares {
		shares[i] = api.PersonShare{
			PersonID:   s.PersonID,
			PersonName: s.PersonName,
			Days:       s.Days,
			Share:      s.Share,
			Percentage: s.Percentage,
		}
	}
	return api.BillCalculation{
		Bill:         billToAPI(c.Bill, loc),
		TotalDays:    c.TotalDays,
		PersonShares: shares,
		TotalShare:   c.TotalShare(),
		Difference:   c.Difference(),
		HasResidual:  c.HasResidual(),
	}
}

func totalToAPI(t calculator.PersonTotal) api.PersonTotal {
	return api.PersonTotal{
		PersonID:   t.PersonID,
		PersonName: t.PersonName,
		Days:       t.Days,
		Bills:      t.Bills,
		Total:      t.Total,
	}
}
