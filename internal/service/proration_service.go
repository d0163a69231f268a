package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/prorata/internal/models"
	"github.com/mmynk/prorata/pkg/api"
)

// ProrationService implements the Connect ProrationService on top of a Household.
type ProrationService struct {
	api.UnimplementedProrationServiceHandler
	household *Household
}

// NewProrationService creates a new ProrationService serving household.
func NewProrationService(household *Household) *ProrationService {
	return &ProrationService{household: household}
}

// toConnectError maps service errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPeriod),
		errors.Is(err, ErrInvalidDate):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrPersonNotFound), errors.Is(err, ErrBillNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// ListPeople returns everyone in the household.
func (s *ProrationService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	loc := s.household.Location()
	people := s.household.People()

	out := make([]api.Person, len(people))
	for i, p := range people {
		out[i] = personToAPI(p, loc)
	}
	return connect.NewResponse(&api.ListPeopleResponse{People: out}), nil
}

// AddPerson adds a person with their periods of presence.
func (s *ProrationService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	loc := s.household.Location()

	periods, err := periodsFromAPI(req.Msg.Periods, loc)
	if err != nil {
		slog.Error("AddPerson validation failed", "error", err)
		return nil, toConnectError(err)
	}

	person, err := s.household.AddPerson(ctx, req.Msg.Name, periods)
	if err != nil {
		slog.Error("AddPerson failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddPersonResponse{Person: personToAPI(person, loc)}), nil
}

// UpdatePersonPeriods replaces the periods of an existing person.
func (s *ProrationService) UpdatePersonPeriods(ctx context.Context, req *connect.Request[api.UpdatePersonPeriodsRequest]) (*connect.Response[api.UpdatePersonPeriodsResponse], error) {
	loc := s.household.Location()

	periods, err := periodsFromAPI(req.Msg.Periods, loc)
	if err != nil {
		slog.Error("UpdatePersonPeriods validation failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, toConnectError(err)
	}

	person, err := s.household.ReplacePeriods(ctx, req.Msg.PersonID, periods)
	if err != nil {
		slog.Error("UpdatePersonPeriods failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdatePersonPeriodsResponse{Person: personToAPI(person, loc)}), nil
}

// RemovePerson removes a person from the household.
func (s *ProrationService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	if err := s.household.RemovePerson(ctx, req.Msg.PersonID); err != nil {
		slog.Error("RemovePerson failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RemovePersonResponse{}), nil
}

// ListBills returns every bill of the household.
func (s *ProrationService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	loc := s.household.Location()
	bills := s.household.Bills()

	out := make([]api.Bill, len(bills))
	for i, b := range bills {
		out[i] = billToAPI(b, loc)
	}
	return connect.NewResponse(&api.ListBillsResponse{Bills: out}), nil
}

// AddBill adds a bill and returns its calculation.
func (s *ProrationService) AddBill(ctx context.Context, req *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error) {
	loc := s.household.Location()

	period, err := parseInterval(req.Msg.Start, req.Msg.End, loc)
	if err != nil {
		slog.Error("AddBill validation failed", "error", err)
		return nil, toConnectError(err)
	}

	bill, err := s.household.AddBill(ctx, req.Msg.Name, req.Msg.Amount, period)
	if err != nil {
		slog.Error("AddBill failed", "error", err)
		return nil, toConnectError(err)
	}

	calc, err := s.household.Calculation(bill.ID)
	if err != nil {
		// Removed concurrently.
		return nil, toConnectError(err)
	}

	slog.Debug("Bill calculated",
		"bill_id", bill.ID,
		"total_days", calc.TotalDays,
		"shares", len(calc.PersonShares),
		"difference", calc.Difference().StringFixed(2),
	)
	return connect.NewResponse(&api.AddBillResponse{
		Bill:        billToAPI(bill, loc),
		Calculation: calculationToAPI(calc, loc),
	}), nil
}

// RemoveBill removes a bill from the household.
func (s *ProrationService) RemoveBill(ctx context.Context, req *connect.Request[api.RemoveBillRequest]) (*connect.Response[api.RemoveBillResponse], error) {
	if err := s.household.RemoveBill(ctx, req.Msg.BillID); err != nil {
		slog.Error("RemoveBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RemoveBillResponse{}), nil
}

// ListCalculations returns the current calculation of every bill.
func (s *ProrationService) ListCalculations(ctx context.Context, req *connect.Request[api.ListCalculationsRequest]) (*connect.Response[api.ListCalculationsResponse], error) {
	loc := s.household.Location()
	calcs := s.household.Calculations()

	out := make([]api.BillCalculation, len(calcs))
	for i, c := range calcs {
		out[i] = calculationToAPI(c, loc)
	}
	return connect.NewResponse(&api.ListCalculationsResponse{Calculations: out}), nil
}

// GetSummary returns each person's totals across all bills.
func (s *ProrationService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	totals := s.household.Summary()

	out := make([]api.PersonTotal, len(totals))
	grand := decimal.Zero
	for i, t := range totals {
		out[i] = totalToAPI(t)
		grand = grand.Add(t.Total)
	}
	return connect.NewResponse(&api.GetSummaryResponse{Totals: out, Total: grand}), nil
}

// CalculateBill prorates the bill in the request among the people in the
// request. The household is neither read nor modified.
func (s *ProrationService) CalculateBill(ctx context.Context, req *connect.Request[api.CalculateBillRequest]) (*connect.Response[api.CalculateBillResponse], error) {
	loc := s.household.Location()

	bill, err := billFromAPI(req.Msg.Bill, loc)
	if err != nil {
		slog.Error("CalculateBill validation failed", "error", err)
		return nil, toConnectError(err)
	}

	people := make([]models.Person, len(req.Msg.People))
	for i, p := range req.Msg.People {
		periods, err := periodsFromAPI(p.Periods, loc)
		if err == nil {
			err = validatePeriods(periods)
		}
		if err != nil {
			err = fmt.Errorf("person %q: %w", p.Name, err)
			slog.Error("CalculateBill validation failed", "error", err)
			return nil, toConnectError(err)
		}
		people[i] = models.Person{ID: p.ID, Name: p.Name, Periods: periods}
	}

	calc := s.household.Calculate(bill, people)
	return connect.NewResponse(&api.CalculateBillResponse{Calculation: calculationToAPI(calc, loc)}), nil
}

// billFromAPI validates a bill that is calculated without being stored.
func billFromAPI(b api.Bill, loc *time.Location) (models.Bill, error) {
	period, err := parseInterval(b.Start, b.End, loc)
	if err != nil {
		return models.Bill{}, err
	}
	if err := validateInterval(period); err != nil {
		return models.Bill{}, err
	}
	if err := validateAmount(b.Amount); err != nil {
		return models.Bill{}, err
	}
	return models.Bill{ID: b.ID, Name: b.Name, Amount: b.Amount, Period: period}, nil
}
