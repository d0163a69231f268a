package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/prorata/internal/config"
	"github.com/mmynk/prorata/internal/metrics"
	"github.com/mmynk/prorata/internal/middleware"
	"github.com/mmynk/prorata/internal/report"
	"github.com/mmynk/prorata/internal/service"
	"github.com/mmynk/prorata/pkg/api"
)

// newMux registers the Connect service and the plain HTTP endpoints.
func newMux(household *service.Household, cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
	)
	path, handler := api.NewProrationServiceHandler(
		service.NewProrationService(household),
		interceptors,
		connect.WithRecover(recoverPanic),
	)
	mux.Handle(path, handler)

	opts := report.Options{Location: cfg.Location, Language: cfg.Language}

	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", healthz(household))
	mux.HandleFunc("GET /report.txt", textReport(household, opts))
	mux.HandleFunc("GET /report.xlsx", workbookReport(household, opts))

	return mux
}

func recoverPanic(ctx context.Context, spec connect.Spec, _ http.Header, p any) error {
	err := fmt.Errorf("panic: %v", p)
	slog.Error("RPC panicked", "procedure", spec.Procedure, "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

func healthz(household *service.Household) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := household.Ping(ctx); err != nil {
			slog.Warn("Health check failed", "error", err)
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	}
}

func textReport(household *service.Household, opts report.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := report.WriteText(w, household.Calculations(), opts); err != nil {
			slog.Error("Text report failed", "error", err)
		}
	}
}

func workbookReport(household *service.Household, opts report.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := report.NewWorkbook(household.Calculations(), opts)
		if err != nil {
			slog.Error("Workbook report failed", "error", err)
			http.Error(w, "failed to build report", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="prorata.xlsx"`)
		if _, err := f.WriteTo(w); err != nil {
			slog.Error("Workbook report failed", "error", err)
		}
	}
}
