package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evermark",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of collection scans.",
	}, []string{"mode", "status"})

	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evermark",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of collection scans.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "status"})

	scanResolved = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evermark",
		Subsystem: "scanner",
		Name:      "scan_resolved_marks",
		Help:      "Number of marks resolved per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"mode"})
)

// Scanner tracks metrics for identifier-space scans.
type Scanner struct{}

// NewScanner constructs a Scanner metrics pack.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ObserveScan records one scan's outcome, size and duration.
func (Scanner) ObserveScan(mode string, err error, resolved int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scanTotal.WithLabelValues(mode, status).Inc()
	scanDuration.WithLabelValues(mode, status).Observe(time.Since(started).Seconds())
	scanResolved.WithLabelValues(mode).Observe(float64(resolved))
}
