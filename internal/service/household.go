package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/prorata/internal/calculator"
	"github.com/mmynk/prorata/internal/ids"
	"github.com/mmynk/prorata/internal/metrics"
	"github.com/mmynk/prorata/internal/models"
	"github.com/mmynk/prorata/internal/storage"
)

// Household owns the people and bills of one shared home.
//
// Every mutation validates its input, persists the affected collection and
// recomputes all bill calculations from scratch. A failed save is logged by
// the repository; the in-memory state stays authoritative.
type Household struct {
	repo *storage.Repository
	ids  ids.Generator
	calc *calculator.Calculator

	mu           sync.RWMutex
	people       []models.Person
	bills        []models.Bill
	calculations []models.BillCalculation
}

// NewHousehold loads people and bills from repo and computes all calculations.
func NewHousehold(ctx context.Context, repo *storage.Repository, gen ids.Generator, calc *calculator.Calculator) *Household {
	if calc == nil {
		calc = calculator.Default
	}
	h := &Household{
		repo:   repo,
		ids:    gen,
		calc:   calc,
		people: repo.LoadPeople(ctx),
		bills:  repo.LoadBills(ctx),
	}
	h.recalculate()
	slog.Info("Household loaded", "people", len(h.people), "bills", len(h.bills))
	return h
}

// Ping checks the storage backend.
func (h *Household) Ping(ctx context.Context) error {
	return h.repo.Ping(ctx)
}

// Location returns the location that decides calendar days.
func (h *Household) Location() *time.Location {
	return h.repo.Location()
}

// People returns a copy of all people, in insertion order.
func (h *Household) People() []models.Person {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return clonePeople(h.people)
}

// Bills returns a copy of all bills, in insertion order.
func (h *Household) Bills() []models.Bill {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.bills)
}

// Calculations returns the current calculation of every bill, in bill order.
func (h *Household) Calculations() []models.BillCalculation {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.calculations)
}

// Calculation returns the current calculation of one bill.
func (h *Household) Calculation(billID string) (models.BillCalculation, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, calc := range h.calculations {
		if calc.Bill.ID == billID {
			return calc, nil
		}
	}
	return models.BillCalculation{}, fmt.Errorf("%w: %s", ErrBillNotFound, billID)
}

// Summary returns each person's totals across all bills.
func (h *Household) Summary() []calculator.PersonTotal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.calc.Summarize(h.calculations)
}

// Calculate prorates a bill among people without touching stored state.
func (h *Household) Calculate(bill models.Bill, people []models.Person) models.BillCalculation {
	metrics.ObserveCalculations(1)
	return h.calc.CalculateBill(bill, people)
}

// AddPerson validates and stores a new person. Periods without an ID get one.
func (h *Household) AddPerson(ctx context.Context, name string, periods []models.Period) (models.Person, error) {
	name, err := cleanName(name)
	if err != nil {
		return models.Person{}, err
	}
	if err := validatePeriods(periods); err != nil {
		return models.Person{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	person := models.Person{
		ID:      h.ids.NewID(),
		Name:    name,
		Periods: h.assignPeriodIDs(periods),
	}
	h.people = append(h.people, person)
	h.savePeople(ctx)
	h.recalculate()

	slog.Info("Person added", "person_id", person.ID, "periods", len(person.Periods))
	return clonePerson(person), nil
}

// ReplacePeriods replaces the whole attendance of a person.
func (h *Household) ReplacePeriods(ctx context.Context, personID string, periods []models.Period) (models.Person, error) {
	if err := validatePeriods(periods); err != nil {
		return models.Person{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.people, func(p models.Person) bool { return p.ID == personID })
	if i < 0 {
		return models.Person{}, fmt.Errorf("%w: %s", ErrPersonNotFound, personID)
	}

	people := clonePeople(h.people)
	people[i].Periods = h.assignPeriodIDs(periods)
	h.people = people
	h.savePeople(ctx)
	h.recalculate()

	slog.Info("Person periods replaced", "person_id", personID, "periods", len(periods))
	return clonePerson(people[i]), nil
}

// RemovePerson deletes a person by ID.
func (h *Household) RemovePerson(ctx context.Context, personID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.people, func(p models.Person) bool { return p.ID == personID })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, personID)
	}

	h.people = slices.Delete(slices.Clone(h.people), i, i+1)
	h.savePeople(ctx)
	h.recalculate()

	slog.Info("Person removed", "person_id", personID)
	return nil
}

// AddBill validates and stores a new bill.
func (h *Household) AddBill(ctx context.Context, name string, amount decimal.Decimal, period models.Interval) (models.Bill, error) {
	name, err := cleanName(name)
	if err != nil {
		return models.Bill{}, err
	}
	if err := validateAmount(amount); err != nil {
		return models.Bill{}, err
	}
	if err := validateInterval(period); err != nil {
		return models.Bill{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	bill := models.Bill{
		ID:     h.ids.NewID(),
		Name:   name,
		Amount: amount,
		Period: period,
	}
	h.bills = append(slices.Clone(h.bills), bill)
	h.saveBills(ctx)
	h.recalculate()

	slog.Info("Bill added", "bill_id", bill.ID, "amount", bill.Amount.StringFixed(2))
	return bill, nil
}

// RemoveBill deletes a bill by ID.
func (h *Household) RemoveBill(ctx context.Context, billID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.bills, func(b models.Bill) bool { return b.ID == billID })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBillNotFound, billID)
	}

	h.bills = slices.Delete(slices.Clone(h.bills), i, i+1)
	h.saveBills(ctx)
	h.recalculate()

	slog.Info("Bill removed", "bill_id", billID)
	return nil
}

// recalculate must be called with h.mu held for writing.
func (h *Household) recalculate() {
	h.calculations = h.calc.CalculateAll(h.bills, h.people)
	metrics.ObserveCalculations(len(h.calculations))
}

func (h *Household) savePeople(ctx context.Context) {
	if err := h.repo.SavePeople(ctx, h.people); err != nil {
		slog.Warn("People changed but not persisted", "error", err)
	}
}

func (h *Household) saveBills(ctx context.Context) {
	if err := h.repo.SaveBills(ctx, h.bills); err != nil {
		slog.Warn("Bills changed but not persisted", "error", err)
	}
}

func (h *Household) assignPeriodIDs(periods []models.Period) []models.Period {
	out := make([]models.Period, len(periods))
	for i, p := range periods {
		if p.ID == "" {
			p.ID = h.ids.NewID()
		}
		out[i] = p
	}
	return out
}

func validatePeriods(periods []models.Period) error {
	for i, p := range periods {
		if err := validateInterval(p.Interval); err != nil {
			return fmt.Errorf("period %d: %w", i+1, err)
		}
	}
	return nil
}

func clonePerson(p models.Person) models.Person {
	p.Periods = slices.Clone(p.Periods)
	if p.Periods == nil {
		p.Periods = []models.Period{}
	}
	return p
}

func clonePeople(people []models.Person) []models.Person {
	out := make([]models.Person, len(people))
	for i, p := range people {
		out[i] = clonePerson(p)
	}
	return out
}
