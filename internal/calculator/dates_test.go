package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/prorata/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func interval(start, end time.Time) models.Interval {
	return models.Interval{Start: start, End: end}
}

func TestDaysBetween(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", day(2024, 1, 1), day(2024, 1, 1), 1},
		{"same day different times", time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC), 1},
		{"full january", day(2024, 1, 1), day(2024, 1, 31), 31},
		{"leap february", day(2024, 2, 1), day(2024, 2, 29), 29},
		{"across year boundary", day(2023, 12, 31), day(2024, 1, 1), 2},
		{"late start early end", time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 1, 0, 0, 0, time.UTC), 3},
		{"inverted by one day", day(2024, 1, 2), day(2024, 1, 1), 0},
		{"inverted by ten days", day(2024, 1, 11), day(2024, 1, 1), -9},
		{"local dates", time.Date(2024, 3, 1, 8, 0, 0, 0, saoPaulo), time.Date(2024, 3, 10, 20, 0, 0, 0, saoPaulo), 10},
		// DST starts on 2024-03-10 in New York: that day has 23 hours.
		{"across DST change", time.Date(2024, 3, 9, 0, 0, 0, 0, newYork), time.Date(2024, 3, 11, 0, 0, 0, 0, newYork), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := day(2024, 5, 3)
	end := day(2024, 5, 20)
	want := DaysBetween(start, end)

	for _, offset := range []time.Duration{time.Minute, 6 * time.Hour, 12 * time.Hour, 23*time.Hour + 59*time.Minute} {
		if got := DaysBetween(start.Add(offset), end); got != want {
			t.Errorf("start +%v: got %d, want %d", offset, got, want)
		}
		if got := DaysBetween(start, end.Add(offset)); got != want {
			t.Errorf("end +%v: got %d, want %d", offset, got, want)
		}
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a      models.Interval
		b      models.Interval
		want   models.Interval
		wantOK bool
	}{
		{
			name:   "contained",
			a:      interval(day(2024, 1, 5), day(2024, 1, 10)),
			b:      interval(day(2024, 1, 1), day(2024, 1, 31)),
			want:   interval(day(2024, 1, 5), day(2024, 1, 10)),
			wantOK: true,
		},
		{
			name:   "partial overlap",
			a:      interval(day(2023, 12, 20), day(2024, 1, 10)),
			b:      interval(day(2024, 1, 1), day(2024, 1, 31)),
			want:   interval(day(2024, 1, 1), day(2024, 1, 10)),
			wantOK: true,
		},
		{
			name:   "touching on one day",
			a:      interval(day(2023, 12, 20), day(2024, 1, 10)),
			b:      interval(day(2024, 1, 10), day(2024, 2, 9)),
			want:   interval(day(2024, 1, 10), day(2024, 1, 10)),
			wantOK: true,
		},
		{
			name:   "touching with different times of day",
			a:      interval(day(2024, 1, 1), time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)),
			b:      interval(time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC), day(2024, 1, 20)),
			want:   interval(day(2024, 1, 10), day(2024, 1, 10)),
			wantOK: true,
		},
		{
			name:   "adjacent days do not overlap",
			a:      interval(day(2024, 1, 1), day(2024, 1, 9)),
			b:      interval(day(2024, 1, 10), day(2024, 1, 20)),
			wantOK: false,
		},
		{
			name:   "disjoint",
			a:      interval(day(2024, 3, 1), day(2024, 3, 31)),
			b:      interval(day(2024, 1, 1), day(2024, 1, 31)),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) {
				t.Errorf("Intersect() = %v..%v, want %v..%v", got.Start, got.End, tt.want.Start, tt.want.End)
			}

			// Symmetry
			rev, revOK := Intersect(tt.b, tt.a)
			if !revOK || !rev.Start.Equal(got.Start) || !rev.End.Equal(got.End) {
				t.Errorf("Intersect(b, a) = %v..%v (%v), want %v..%v", rev.Start, rev.End, revOK, got.Start, got.End)
			}
		})
	}
}

func TestPersonDaysInBill(t *testing.T) {
	january := interval(day(2024, 1, 1), day(2024, 1, 31))

	tests := []struct {
		name    string
		periods []models.Interval
		want    int
	}{
		{"no periods", nil, 0},
		{"whole period", []models.Interval{january}, 31},
		{"single day", []models.Interval{interval(day(2024, 1, 5), day(2024, 1, 5))}, 1},
		{"outside", []models.Interval{interval(day(2024, 2, 1), day(2024, 2, 28))}, 0},
		{"clipped at both ends", []models.Interval{interval(day(2023, 12, 1), day(2024, 2, 15))}, 31},
		{"ends on first bill day", []models.Interval{interval(day(2023, 12, 1), day(2024, 1, 1))}, 1},
		{
			name: "two disjoint periods",
			periods: []models.Interval{
				interval(day(2024, 1, 1), day(2024, 1, 10)),
				interval(day(2024, 1, 21), day(2024, 1, 31)),
			},
			want: 21,
		},
		{
			// Overlapping periods are counted once each.
			name: "overlapping periods double count",
			periods: []models.Interval{
				interval(day(2024, 1, 1), day(2024, 1, 10)),
				interval(day(2024, 1, 6), day(2024, 1, 15)),
			},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := models.Person{ID: "p1", Name: "Ana"}
			for i, p := range tt.periods {
				person.Periods = append(person.Periods, models.Period{ID: string(rune('a' + i)), Interval: p})
			}
			if got := PersonDaysInBill(person, january); got != tt.want {
				t.Errorf("PersonDaysInBill() = %d, want %d", got, tt.want)
			}
		})
	}
}
