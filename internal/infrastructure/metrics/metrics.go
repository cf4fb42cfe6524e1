package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the ledger service.
type Metrics struct {
	// Ledger metrics
	AccountsCreated   prometheus.Counter
	MovementsRecorded *prometheus.CounterVec
	TransfersCreated  prometheus.Counter
	TransferErrors    *prometheus.CounterVec
	TransferDuration  prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all metrics on the given registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fondos_accounts_created_total",
			Help: "Total number of fund accounts created",
		}),
		MovementsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fondos_movements_recorded_total",
				Help: "Total number of movements recorded by type",
			},
			[]string{"tipo"},
		),
		TransfersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fondos_transfers_created_total",
			Help: "Total number of transfers completed",
		}),
		TransferErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fondos_transfer_errors_total",
				Help: "Total number of failed transfers by error type",
			},
			[]string{"error_type"},
		),
		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fondos_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fondos_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fondos_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}
