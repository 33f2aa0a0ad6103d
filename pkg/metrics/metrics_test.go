package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, UploadsTotal)
	assert.NotNil(t, CircuitBreakerState)
}

func TestObserveHTTPRequest(t *testing.T) {
	InitMetrics()
	c, err := HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/books/:id", "404")
	require.NoError(t, err)
	before := counterValue(t, c)

	ObserveHTTPRequest("GET", "/books/:id", 404, 3*time.Millisecond)
	ObserveHTTPRequest("GET", "/books/:id", 404, 5*time.Millisecond)

	assert.Equal(t, before+2, counterValue(t, c))

	h, err := HTTPRequestDuration.GetMetricWithLabelValues("GET", "/books/:id")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, histogramCount(t, h.(prometheus.Histogram)), uint64(2))
}

func TestBusinessCounters(t *testing.T) {
	InitMetrics()

	created := BookMutationsTotal.WithLabelValues("create")
	before := counterValue(t, created)
	IncBookMutation("create")
	assert.Equal(t, before+1, counterValue(t, created))

	notesBefore := counterValue(t, NotesCreatedTotal)
	IncNotesCreated()
	assert.Equal(t, notesBefore+1, counterValue(t, NotesCreatedTotal))
}

func TestObserveUpload(t *testing.T) {
	InitMetrics()

	rejected := UploadsTotal.WithLabelValues("rejected")
	countBefore := histogramCount(t, UploadSize)
	rejectedBefore := counterValue(t, rejected)

	ObserveUpload("rejected", -1)
	ObserveUpload("success", 2048)

	assert.Equal(t, rejectedBefore+1, counterValue(t, rejected))
	assert.Equal(t, countBefore+1, histogramCount(t, UploadSize))
}

func TestObserveStorage(t *testing.T) {
	ObserveStorage("put", 10*time.Millisecond, errors.New("boom"))

	h, err := StorageOperationDuration.GetMetricWithLabelValues("put", "failure")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, histogramCount(t, h.(prometheus.Histogram)), uint64(1))
}

func TestCircuitBreakerMetrics(t *testing.T) {
	SetCircuitBreakerState("storage", 1)

	var m dto.Metric
	require.NoError(t, CircuitBreakerState.WithLabelValues("storage").Write(&m))
	assert.Equal(t, float64(1), m.GetGauge().GetValue())

	rejected := CircuitBreakerRequests.WithLabelValues("storage", "rejected")
	before := counterValue(t, rejected)
	IncCircuitBreakerRequest("storage", "rejected")
	assert.Equal(t, before+1, counterValue(t, rejected))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}
