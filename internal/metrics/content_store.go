package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contentCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evermark",
		Subsystem: "content_store",
		Name:      "operations_total",
		Help:      "Count of content store fetches and publishes.",
	}, []string{"operation", "status"})

	contentCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evermark",
		Subsystem: "content_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of content store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ContentStore tracks metrics for gateway fetches and pin publishes.
type ContentStore struct{}

// NewContentStore constructs a ContentStore metrics pack.
func NewContentStore() *ContentStore {
	return &ContentStore{}
}

// Observe records one content store operation outcome and duration.
func (ContentStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	contentCallsTotal.WithLabelValues(operation, status).Inc()
	contentCallDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
