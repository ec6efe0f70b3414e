// Package metrics provides Prometheus metrics collection for the coffee stock service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AvailabilityComputationsTotal counts stock availability computations.
	AvailabilityComputationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stock_availability_computations_total",
			Help: "Total number of stock availability computations",
		},
	)

	// ReservationValidationsTotal counts selection validations by outcome.
	ReservationValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_validations_total",
			Help: "Total number of reservation selection validations",
		},
		[]string{"outcome"},
	)

	// ReservationsCreatedTotal counts persisted reservations.
	ReservationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Total number of reservations persisted",
		},
	)

	// CalculationsTotal counts calculator runs by variant and status.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumption_calculations_total",
			Help: "Total number of consumption calculations",
		},
		[]string{"kind", "status"},
	)

	// CalculationDuration tracks calculator run duration.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "consumption_calculation_duration_seconds",
			Help:    "Consumption calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordAvailabilityComputation records one availability computation.
func RecordAvailabilityComputation() {
	AvailabilityComputationsTotal.Inc()
}

// RecordReservationValidation records a selection validation outcome.
func RecordReservationValidation(outcome string) {
	ReservationValidationsTotal.WithLabelValues(outcome).Inc()
}

// RecordReservationCreated records persisted reservations.
func RecordReservationCreated(count int) {
	ReservationsCreatedTotal.Add(float64(count))
}

// RecordCalculation records metrics for a calculator run.
func RecordCalculation(kind, status string, duration time.Duration) {
	CalculationsTotal.WithLabelValues(kind, status).Inc()
	CalculationDuration.Observe(duration.Seconds())
}
