// Package metrics exposes Prometheus counters for the proration server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RPCRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prorata", Name: "rpc_requests_total", Help: "Handled RPC calls by procedure and result code",
	}, []string{"procedure", "code"})
	Calculations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prorata", Name: "bill_calculations_total", Help: "Bills prorated",
	})
	StorageErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prorata", Name: "storage_errors_total", Help: "Failed loads and saves by operation",
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(RPCRequests, Calculations, StorageErrors)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveRPC counts one finished RPC. code is "ok" on success.
func ObserveRPC(procedure, code string) {
	RPCRequests.WithLabelValues(procedure, code).Inc()
}

// ObserveCalculations counts n prorated bills.
func ObserveCalculations(n int) {
	Calculations.Add(float64(n))
}

// ObserveStorageError counts one failed storage operation ("load_people", "save_bills", ...).
func ObserveStorageError(operation string) {
	StorageErrors.WithLabelValues(operation).Inc()
}
