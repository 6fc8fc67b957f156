package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, route, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// RequestTotal counts HTTP requests by method, route, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	ForecastsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "forecasts_generated_total",
			Help: "Number of forecast records stored",
		},
	)

	WeatherFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weather_fetch_failures_total",
			Help: "Number of failed weather provider lookups",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, ForecastsGenerated, WeatherFetchFailures)
}

// RecordRequest records duration and count for an HTTP request. route should be
// the matched route pattern, not the raw path, to keep label cardinality low.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

func IncForecastsGenerated() {
	ForecastsGenerated.Inc()
}

func IncWeatherFetchFailures() {
	WeatherFetchFailures.Inc()
}
