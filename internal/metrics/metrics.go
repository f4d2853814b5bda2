package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService interface {
	GetRegistry() *prometheus.Registry
	// Operation-level metrics, one label value per façade operation
	IncOperationCalls(operation string)
	ObserveOperationDuration(operation string, duration float64)
	IncOperationErrors(operation, errorType string)
	// HTTP metrics for the ripple-rest round trip
	IncHTTPResponses(method string, statusCode int)
	SetServerConnected(connected bool)
}

// metricsService handles all metrics for the ripple-rest client
type metricsService struct {
	registry *prometheus.Registry

	operationCallsTotal  *prometheus.CounterVec
	operationDuration    *prometheus.SummaryVec
	operationErrorsTotal *prometheus.CounterVec

	httpResponsesTotal *prometheus.CounterVec
	serverConnected    prometheus.Gauge
}

// NewMetricsService creates a new metrics service with all metrics registered. A nil registry
// gets a fresh one.
func NewMetricsService(registry *prometheus.Registry) MetricsService {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := &metricsService{registry: registry}

	m.operationCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripplerest_operation_calls_total",
			Help: "Total number of ripple-rest client operation calls",
		},
		[]string{"operation"},
	)
	m.operationDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "ripplerest_operation_duration_seconds",
			Help:       "Duration of ripple-rest operations including request building and decoding",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
	m.operationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripplerest_operation_errors_total",
			Help: "Total number of ripple-rest operation errors by error type",
		},
		[]string{"operation", "error_type"},
	)

	m.httpResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ripplerest_http_responses_total",
			Help: "Total number of HTTP responses received from ripple-rest",
		},
		[]string{"method", "status"},
	)
	m.serverConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ripplerest_server_connected",
			Help: "Whether ripple-rest reported a rippled connection on the last check (1 for connected, 0 otherwise)",
		},
	)

	m.registerMetrics()
	return m
}

func (m *metricsService) registerMetrics() {
	m.registry.MustRegister(
		m.operationCallsTotal,
		m.operationDuration,
		m.operationErrorsTotal,
		m.httpResponsesTotal,
		m.serverConnected,
	)
}

func (m *metricsService) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *metricsService) IncOperationCalls(operation string) {
	m.operationCallsTotal.WithLabelValues(operation).Inc()
}

func (m *metricsService) ObserveOperationDuration(operation string, duration float64) {
	m.operationDuration.WithLabelValues(operation).Observe(duration)
}

func (m *metricsService) IncOperationErrors(operation, errorType string) {
	m.operationErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

func (m *metricsService) IncHTTPResponses(method string, statusCode int) {
	m.httpResponsesTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

func (m *metricsService) SetServerConnected(connected bool) {
	if connected {
		m.serverConnected.Set(1)
	} else {
		m.serverConnected.Set(0)
	}
}
