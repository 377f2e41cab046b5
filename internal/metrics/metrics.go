// Package metrics registers the service's Prometheus collectors on the
// default registry, exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Appointments
	AppointmentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barber_booking_appointments_created_total",
			Help: "Appointments successfully booked",
		},
	)

	AppointmentsCanceled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barber_booking_appointments_canceled_total",
			Help: "Appointments moved from booked to canceled",
		},
	)

	SlotConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_booking_slot_conflicts_total",
			Help: "Create attempts rejected because the slot was taken",
		},
		[]string{"source"}, // checker, store
	)

	AvailabilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_booking_availability_checks_total",
			Help: "Availability checks by outcome",
		},
		[]string{"available"},
	)

	LockWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "barber_booking_barber_lock_wait_seconds",
			Help:    "Time spent waiting for the per-barber lock",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	// Errors
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_booking_errors_total",
			Help: "Errors by component and type",
		},
		[]string{"component", "error_type"},
	)

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_booking_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barber_booking_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func RecordSlotConflict(source string) {
	SlotConflicts.WithLabelValues(source).Inc()
}

func RecordAvailabilityCheck(available bool) {
	label := "false"
	if available {
		label = "true"
	}
	AvailabilityChecks.WithLabelValues(label).Inc()
}

func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
