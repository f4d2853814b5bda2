package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	mock.Mock
}

var _ MetricsService = (*MockMetricsService)(nil)

// NewMockMetricsService creates a new mock metrics service
func NewMockMetricsService() *MockMetricsService {
	return &MockMetricsService{}
}

func (m *MockMetricsService) GetRegistry() *prometheus.Registry {
	args := m.Called()
	return args.Get(0).(*prometheus.Registry)
}

func (m *MockMetricsService) IncOperationCalls(operation string) {
	m.Called(operation)
}

func (m *MockMetricsService) ObserveOperationDuration(operation string, duration float64) {
	m.Called(operation, duration)
}

func (m *MockMetricsService) IncOperationErrors(operation, errorType string) {
	m.Called(operation, errorType)
}

func (m *MockMetricsService) IncHTTPResponses(method string, statusCode int) {
	m.Called(method, statusCode)
}

func (m *MockMetricsService) SetServerConnected(connected bool) {
	m.Called(connected)
}
