package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/prorata/internal/metrics"
	"github.com/mmynk/prorata/internal/models"
)

// Keys of the two collections in the Store.
const (
	KeyPeople = "pro-rateio-people"
	KeyBills  = "pro-rateio-bills"
)

// dateOnly is accepted on load in addition to RFC 3339 timestamps.
const dateOnly = "2006-01-02"

type periodRecord struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type personRecord struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Periods []periodRecord `json:"periods"`
}

type billRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

// Repository loads and saves people and bills.
//
// Load never fails: a missing key yields an empty collection, and a store or
// decoding failure is logged and also yields an empty collection. Dates that
// are missing or unparseable are replaced by the current time.
type Repository struct {
	store    Store
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewRepository creates a Repository over store. Loaded dates are expressed
// in location, which decides their calendar day.
func NewRepository(store Store, location *time.Location, logger *slog.Logger) *Repository {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		store:    store,
		location: location,
		logger:   logger.With("component", "repository"),
		now:      time.Now,
	}
}

// Location returns the location loaded dates are expressed in.
func (r *Repository) Location() *time.Location {
	return r.location
}

// Ping checks the underlying store.
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// LoadPeople returns all stored people.
func (r *Repository) LoadPeople(ctx context.Context) []models.Person {
	var records []personRecord
	if !r.load(ctx, KeyPeople, "load_people", &records) {
		return []models.Person{}
	}

	people := make([]models.Person, 0, len(records))
	for _, rec := range records {
		person := models.Person{
			ID:      rec.ID,
			Name:    rec.Name,
			Periods: make([]models.Period, 0, len(rec.Periods)),
		}
		for _, p := range rec.Periods {
			person.Periods = append(person.Periods, models.Period{
				ID: p.ID,
				Interval: models.Interval{
					Start: r.parseDate(KeyPeople, p.StartDate),
					End:   r.parseDate(KeyPeople, p.EndDate),
				},
			})
		}
		people = append(people, person)
	}
	return people
}

// SavePeople replaces the stored people.
func (r *Repository) SavePeople(ctx context.Context, people []models.Person) error {
	records := make([]personRecord, 0, len(people))
	for _, person := range people {
		rec := personRecord{
			ID:      person.ID,
			Name:    person.Name,
			Periods: make([]periodRecord, 0, len(person.Periods)),
		}
		for _, p := range person.Periods {
			rec.Periods = append(rec.Periods, periodRecord{
				ID:        p.ID,
				StartDate: formatDate(p.Start),
				EndDate:   formatDate(p.End),
			})
		}
		records = append(records, rec)
	}
	return r.save(ctx, KeyPeople, "save_people", records)
}

// LoadBills returns all stored bills.
func (r *Repository) LoadBills(ctx context.Context) []models.Bill {
	var records []billRecord
	if !r.load(ctx, KeyBills, "load_bills", &records) {
		return []models.Bill{}
	}

	bills := make([]models.Bill, 0, len(records))
	for _, rec := range records {
		bills = append(bills, models.Bill{
			ID:     rec.ID,
			Name:   rec.Name,
			Amount: rec.Amount,
			Period: models.Interval{
				Start: r.parseDate(KeyBills, rec.StartDate),
				End:   r.parseDate(KeyBills, rec.EndDate),
			},
		})
	}
	return bills
}

// SaveBills replaces the stored bills.
func (r *Repository) SaveBills(ctx context.Context, bills []models.Bill) error {
	records := make([]billRecord, 0, len(bills))
	for _, bill := range bills {
		records = append(records, billRecord{
			ID:        bill.ID,
			Name:      bill.Name,
			Amount:    bill.Amount,
			StartDate: formatDate(bill.Period.Start),
			EndDate:   formatDate(bill.Period.End),
		})
	}
	return r.save(ctx, KeyBills, "save_bills", records)
}

// load decodes the JSON document under key into dst. It reports whether dst
// was filled; failures are logged and counted.
func (r *Repository) load(ctx context.Context, key, operation string, dst any) bool {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		r.logger.Error("Failed to read collection", "key", key, "error", err)
		metrics.ObserveStorageError(operation)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.logger.Error("Failed to decode collection", "key", key, "error", err)
		metrics.ObserveStorageError(operation)
		return false
	}
	return true
}

func (r *Repository) save(ctx context.Context, key, operation string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		r.logger.Error("Failed to encode collection", "key", key, "error", err)
		metrics.ObserveStorageError(operation)
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		r.logger.Error("Failed to write collection", "key", key, "error", err)
		metrics.ObserveStorageError(operation)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	r.logger.Debug("Collection saved", "key", key, "bytes", len(data))
	return nil
}

// parseDate parses an RFC 3339 timestamp or a plain date. Anything else
// becomes the current time.
func (r *Repository) parseDate(key, s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(r.location)
	}
	if t, err := time.ParseInLocation(dateOnly, s, r.location); err == nil {
		return t
	}
	r.logger.Warn("Invalid stored date, using current date", "key", key, "value", s)
	return r.now().In(r.location)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
