// Package metrics exposes Prometheus instrumentation for the engine's
// external surfaces.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evermark",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger contract calls.",
	}, []string{"contract", "operation", "status"})

	ledgerCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evermark",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger contract calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"contract", "operation", "status"})
)

// LedgerClient tracks metrics for contract reads and submissions.
type LedgerClient struct{}

// NewLedgerClient constructs a LedgerClient metrics pack.
func NewLedgerClient() *LedgerClient {
	return &LedgerClient{}
}

// Observe records one contract call outcome and duration.
func (LedgerClient) Observe(contract, operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if contract == "" {
		contract = "unknown"
	}

	ledgerCallsTotal.WithLabelValues(contract, operation, status).Inc()
	ledgerCallDuration.WithLabelValues(contract, operation, status).
		Observe(time.Since(started).Seconds())
}
