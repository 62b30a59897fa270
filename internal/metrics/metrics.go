package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AssignmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_assignments_total",
			Help: "Total dispatch decisions",
		},
		[]string{"strategy", "result"}, // result: assigned|no_doctor|empty_queue
	)

	AdmissionDenialsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_admission_denials_total",
			Help: "Intake requests denied by the rate limiter",
		},
	)

	BatchesDeliveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_batches_delivered_total",
			Help: "Notification batches delivered to the transport",
		},
	)

	WaitTimeMinutes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_wait_time_minutes",
			Help:    "Wait time of completed tickets in minutes",
			Buckets: []float64{5, 10, 20, 30, 60, 120, 240},
		},
	)
)

func init() {
	prometheus.MustRegister(AssignmentsTotal)
	prometheus.MustRegister(AdmissionDenialsTotal)
	prometheus.MustRegister(BatchesDeliveredTotal)
	prometheus.MustRegister(WaitTimeMinutes)
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
