package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// ProrationServiceName is the fully-qualified name of the ProrationService service.
const ProrationServiceName = "prorata.v1.ProrationService"

// Fully-qualified procedure names, used as HTTP routes and in interceptors.
const (
	ProrationServiceListPeopleProcedure          = "/prorata.v1.ProrationService/ListPeople"
	ProrationServiceAddPersonProcedure           = "/prorata.v1.ProrationService/AddPerson"
	ProrationServiceUpdatePersonPeriodsProcedure = "/prorata.v1.ProrationService/UpdatePersonPeriods"
	ProrationServiceRemovePersonProcedure        = "/prorata.v1.ProrationService/RemovePerson"
	ProrationServiceListBillsProcedure           = "/prorata.v1.ProrationService/ListBills"
	ProrationServiceAddBillProcedure             = "/prorata.v1.ProrationService/AddBill"
	ProrationServiceRemoveBillProcedure          = "/prorata.v1.ProrationService/RemoveBill"
	ProrationServiceListCalculationsProcedure    = "/prorata.v1.ProrationService/ListCalculations"
	ProrationServiceGetSummaryProcedure          = "/prorata.v1.ProrationService/GetSummary"
	ProrationServiceCalculateBillProcedure       = "/prorata.v1.ProrationService/CalculateBill"
)

// ProrationServiceClient is a client for the prorata.v1.ProrationService service.
type ProrationServiceClient interface {
	ListPeople(context.Context, *connect.Request[ListPeopleRequest]) (*connect.Response[ListPeopleResponse], error)
	AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error)
	UpdatePersonPeriods(context.Context, *connect.Request[UpdatePersonPeriodsRequest]) (*connect.Response[UpdatePersonPeriodsResponse], error)
	RemovePerson(context.Context, *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	AddBill(context.Context, *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error)
	RemoveBill(context.Context, *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error)
	ListCalculations(context.Context, *connect.Request[ListCalculationsRequest]) (*connect.Response[ListCalculationsResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
	CalculateBill(context.Context, *connect.Request[CalculateBillRequest]) (*connect.Response[CalculateBillResponse], error)
}

// NewProrationServiceClient constructs a client for the prorata.v1.ProrationService
// service. Messages are encoded with JSONCodec.
//
// The URL supplied here should be the base URL for the server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewProrationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProrationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &prorationServiceClient{
		listPeople: connect.NewClient[ListPeopleRequest, ListPeopleResponse](
			httpClient,
			baseURL+ProrationServiceListPeopleProcedure,
			readOnly(opts)...,
		),
		addPerson: connect.NewClient[AddPersonRequest, AddPersonResponse](
			httpClient,
			baseURL+ProrationServiceAddPersonProcedure,
			opts...,
		),
		updatePersonPeriods: connect.NewClient[UpdatePersonPeriodsRequest, UpdatePersonPeriodsResponse](
			httpClient,
			baseURL+ProrationServiceUpdatePersonPeriodsProcedure,
			opts...,
		),
		removePerson: connect.NewClient[RemovePersonRequest, RemovePersonResponse](
			httpClient,
			baseURL+ProrationServiceRemovePersonProcedure,
			opts...,
		),
		listBills: connect.NewClient[ListBillsRequest, ListBillsResponse](
			httpClient,
			baseURL+ProrationServiceListBillsProcedure,
			readOnly(opts)...,
		),
		addBill: connect.NewClient[AddBillRequest, AddBillResponse](
			httpClient,
			baseURL+ProrationServiceAddBillProcedure,
			opts...,
		),
		removeBill: connect.NewClient[RemoveBillRequest, RemoveBillResponse](
			httpClient,
			baseURL+ProrationServiceRemoveBillProcedure,
			opts...,
		),
		listCalculations: connect.NewClient[ListCalculationsRequest, ListCalculationsResponse](
			httpClient,
			baseURL+ProrationServiceListCalculationsProcedure,
			readOnly(opts)...,
		),
		getSummary: connect.NewClient[GetSummaryRequest, GetSummaryResponse](
			httpClient,
			baseURL+ProrationServiceGetSummaryProcedure,
			readOnly(opts)...,
		),
		calculateBill: connect.NewClient[CalculateBillRequest, CalculateBillResponse](
			httpClient,
			baseURL+ProrationServiceCalculateBillProcedure,
			readOnly(opts)...,
		),
	}
}

// prorationServiceClient implements ProrationServiceClient.
type prorationServiceClient struct {
	listPeople          *connect.Client[ListPeopleRequest, ListPeopleResponse]
	addPerson           *connect.Client[AddPersonRequest, AddPersonResponse]
	updatePersonPeriods *connect.Client[UpdatePersonPeriodsRequest, UpdatePersonPeriodsResponse]
	removePerson        *connect.Client[RemovePersonRequest, RemovePersonResponse]
	listBills           *connect.Client[ListBillsRequest, ListBillsResponse]
	addBill             *connect.Client[AddBillRequest, AddBillResponse]
	removeBill          *connect.Client[RemoveBillRequest, RemoveBillResponse]
	listCalculations    *connect.Client[ListCalculationsRequest, ListCalculationsResponse]
	getSummary          *connect.Client[GetSummaryRequest, GetSummaryResponse]
	calculateBill       *connect.Client[CalculateBillRequest, CalculateBillResponse]
}

// ListPeople calls prorata.v1.ProrationService.ListPeople.
func (c *prorationServiceClient) ListPeople(ctx context.Context, req *connect.Request[ListPeopleRequest]) (*connect.Response[ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

// AddPerson calls prorata.v1.ProrationService.AddPerson.
func (c *prorationServiceClient) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

// UpdatePersonPeriods calls prorata.v1.ProrationService.UpdatePersonPeriods.
func (c *prorationServiceClient) UpdatePersonPeriods(ctx context.Context, req *connect.Request[UpdatePersonPeriodsRequest]) (*connect.Response[UpdatePersonPeriodsResponse], error) {
	return c.updatePersonPeriods.CallUnary(ctx, req)
}

// RemovePerson calls prorata.v1.ProrationService.RemovePerson.
func (c *prorationServiceClient) RemovePerson(ctx context.Context, req *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

// ListBills calls prorata.v1.ProrationService.ListBills.
func (c *prorationServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// AddBill calls prorata.v1.ProrationService.AddBill.
func (c *prorationServiceClient) AddBill(ctx context.Context, req *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error) {
	return c.addBill.CallUnary(ctx, req)
}

// RemoveBill calls prorata.v1.ProrationService.RemoveBill.
func (c *prorationServiceClient) RemoveBill(ctx context.Context, req *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error) {
	return c.removeBill.CallUnary(ctx, req)
}

// ListCalculations calls prorata.v1.ProrationService.ListCalculations.
func (c *prorationServiceClient) ListCalculations(ctx context.Context, req *connect.Request[ListCalculationsRequest]) (*connect.Response[ListCalculationsResponse], error) {
	return c.listCalculations.CallUnary(ctx, req)
}

// GetSummary calls prorata.v1.ProrationService.GetSummary.
func (c *prorationServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

// CalculateBill calls prorata.v1.ProrationService.CalculateBill.
func (c *prorationServiceClient) CalculateBill(ctx context.Context, req *connect.Request[CalculateBillRequest]) (*connect.Response[CalculateBillResponse], error) {
	return c.calculateBill.CallUnary(ctx, req)
}

// readOnly marks a procedure as free of side effects.
func readOnly(opts []connect.ClientOption) []connect.ClientOption {
	return append(opts[:len(opts):len(opts)], connect.WithIdempotency(connect.IdempotencyNoSideEffects))
}

// ProrationServiceHandler is an implementation of the prorata.v1.ProrationService service.
type ProrationServiceHandler interface {
	ListPeople(context.Context, *connect.Request[ListPeopleRequest]) (*connect.Response[ListPeopleResponse], error)
	AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error)
	UpdatePersonPeriods(context.Context, *connect.Request[UpdatePersonPeriodsRequest]) (*connect.Response[UpdatePersonPeriodsResponse], error)
	RemovePerson(context.Context, *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	AddBill(context.Context, *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error)
	RemoveBill(context.Context, *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error)
	ListCalculations(context.Context, *connect.Request[ListCalculationsRequest]) (*connect.Response[ListCalculationsResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
	CalculateBill(context.Context, *connect.Request[CalculateBillRequest]) (*connect.Response[CalculateBillResponse], error)
}

// NewProrationServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself. JSONCodec is registered ahead of opts.
func NewProrationServiceHandler(svc ProrationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	readOnlyOpts := append(opts[:len(opts):len(opts)], connect.WithIdempotency(connect.IdempotencyNoSideEffects))

	prorationServiceListPeopleHandler := connect.NewUnaryHandler(
		ProrationServiceListPeopleProcedure,
		svc.ListPeople,
		readOnlyOpts...,
	)
	prorationServiceAddPersonHandler := connect.NewUnaryHandler(
		ProrationServiceAddPersonProcedure,
		svc.AddPerson,
		opts...,
	)
	prorationServiceUpdatePersonPeriodsHandler := connect.NewUnaryHandler(
		ProrationServiceUpdatePersonPeriodsProcedure,
		svc.UpdatePersonPeriods,
		opts...,
	)
	prorationServiceRemovePersonHandler := connect.NewUnaryHandler(
		ProrationServiceRemovePersonProcedure,
		svc.RemovePerson,
		opts...,
	)
	prorationServiceListBillsHandler := connect.NewUnaryHandler(
		ProrationServiceListBillsProcedure,
		svc.ListBills,
		readOnlyOpts...,
	)
	prorationServiceAddBillHandler := connect.NewUnaryHandler(
		ProrationServiceAddBillProcedure,
		svc.AddBill,
		opts...,
	)
	prorationServiceRemoveBillHandler := connect.NewUnaryHandler(
		ProrationServiceRemoveBillProcedure,
		svc.RemoveBill,
		opts...,
	)
	prorationServiceListCalculationsHandler := connect.NewUnaryHandler(
		ProrationServiceListCalculationsProcedure,
		svc.ListCalculations,
		readOnlyOpts...,
	)
	prorationServiceGetSummaryHandler := connect.NewUnaryHandler(
		ProrationServiceGetSummaryProcedure,
		svc.GetSummary,
		readOnlyOpts...,
	)
	prorationServiceCalculateBillHandler := connect.NewUnaryHandler(
		ProrationServiceCalculateBillProcedure,
		svc.CalculateBill,
		readOnlyOpts...,
	)
	return "/prorata.v1.ProrationService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProrationServiceListPeopleProcedure:
			prorationServiceListPeopleHandler.ServeHTTP(w, r)
		case ProrationServiceAddPersonProcedure:
			prorationServiceAddPersonHandler.ServeHTTP(w, r)
		case ProrationServiceUpdatePersonPeriodsProcedure:
			prorationServiceUpdatePersonPeriodsHandler.ServeHTTP(w, r)
		case ProrationServiceRemovePersonProcedure:
			prorationServiceRemovePersonHandler.ServeHTTP(w, r)
		case ProrationServiceListBillsProcedure:
			prorationServiceListBillsHandler.ServeHTTP(w, r)
		case ProrationServiceAddBillProcedure:
			prorationServiceAddBillHandler.ServeHTTP(w, r)
		case ProrationServiceRemoveBillProcedure:
			prorationServiceRemoveBillHandler.ServeHTTP(w, r)
		case ProrationServiceListCalculationsProcedure:
			prorationServiceListCalculationsHandler.ServeHTTP(w, r)
		case ProrationServiceGetSummaryProcedure:
			prorationServiceGetSummaryHandler.ServeHTTP(w, r)
		case ProrationServiceCalculateBillProcedure:
			prorationServiceCalculateBillHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedProrationServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedProrationServiceHandler struct{}

func (UnimplementedProrationServiceHandler) ListPeople(context.Context, *connect.Request[ListPeopleRequest]) (*connect.Response[ListPeopleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.ListPeople is not implemented"))
}

func (UnimplementedProrationServiceHandler) AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.AddPerson is not implemented"))
}

func (UnimplementedProrationServiceHandler) UpdatePersonPeriods(context.Context, *connect.Request[UpdatePersonPeriodsRequest]) (*connect.Response[UpdatePersonPeriodsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.UpdatePersonPeriods is not implemented"))
}

func (UnimplementedProrationServiceHandler) RemovePerson(context.Context, *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.RemovePerson is not implemented"))
}

func (UnimplementedProrationServiceHandler) ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.ListBills is not implemented"))
}

func (UnimplementedProrationServiceHandler) AddBill(context.Context, *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.AddBill is not implemented"))
}

func (UnimplementedProrationServiceHandler) RemoveBill(context.Context, *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.RemoveBill is not implemented"))
}

func (UnimplementedProrationServiceHandler) ListCalculations(context.Context, *connect.Request[ListCalculationsRequest]) (*connect.Response[ListCalculationsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.ListCalculations is not implemented"))
}

func (UnimplementedProrationServiceHandler) GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.GetSummary is not implemented"))
}

func (UnimplementedProrationServiceHandler) CalculateBill(context.Context, *connect.Request[CalculateBillRequest]) (*connect.Response[CalculateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("prorata.v1.ProrationService.CalculateBill is not implemented"))
}
