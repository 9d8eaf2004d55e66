package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WizardOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_operations_total",
			Help: "Total number of wizard operations",
		},
		[]string{"operation", "outcome"}, // outcome: applied|rejected|error
	)

	WizardRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_rejections_total",
			Help: "Operations left without effect, by warning code",
		},
		[]string{"code"},
	)

	WizardOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wizard_operation_duration_seconds",
			Help:    "Wizard operation duration including snapshot load and save",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	SessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wizard_sessions_created_total",
			Help: "Total number of wizard sessions created",
		},
	)

	StepsReached = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_steps_reached_total",
			Help: "Forward moves into each wizard step",
		},
		[]string{"step"},
	)

	initOnce sync.Once
)

// Init registers all metrics with Prometheus
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(WizardOperations)
		prometheus.MustRegister(WizardRejections)
		prometheus.MustRegister(WizardOperationDuration)
		prometheus.MustRegister(SessionsCreated)
		prometheus.MustRegister(StepsReached)
	})
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordOperation records one wizard operation and the code it was rejected with, if any
func RecordOperation(operation string, duration time.Duration, rejectionCode string, err error) {
	outcome := "applied"
	switch {
	case err != nil:
		outcome = "error"
	case rejectionCode != "":
		outcome = "rejected"
		WizardRejections.WithLabelValues(rejectionCode).Inc()
	}

	WizardOperations.WithLabelValues(operation, outcome).Inc()
	WizardOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
