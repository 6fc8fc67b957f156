package metrics_test

import (
	"testing"
	"ulascansenturk/energy-forecast/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/forecast", "200"))

	metrics.RecordRequest("GET", "/forecast", 200, 0.05)
	metrics.RecordRequest("GET", "/forecast", 200, 0.07)

	after := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/forecast", "200"))
	assert.Equal(t, before+2, after)
}

func TestForecastCounters(t *testing.T) {
	generated := testutil.ToFloat64(metrics.ForecastsGenerated)
	failures := testutil.ToFloat64(metrics.WeatherFetchFailures)

	metrics.IncForecastsGenerated()
	metrics.IncWeatherFetchFailures()
	metrics.IncWeatherFetchFailures()

	assert.Equal(t, generated+1, testutil.ToFloat64(metrics.ForecastsGenerated))
	assert.Equal(t, failures+2, testutil.ToFloat64(metrics.WeatherFetchFailures))
}
