package metrics

import (
	"net/http"
	"time"
)

// Metrics interface for dependency injection
type Metrics interface {
	RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration)
	RecordClassification(strategy, status string, duration time.Duration)
	RecordFallback()
	Handler() http.Handler
}

// NoOpMetrics provides a no-op implementation
type NoOpMetrics struct{}

func (m *NoOpMetrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
}
func (m *NoOpMetrics) RecordClassification(strategy, status string, duration time.Duration) {}
func (m *NoOpMetrics) RecordFallback()                                                      {}
func (m *NoOpMetrics) Handler() http.Handler                                                { return http.NotFoundHandler() }

// Global metrics instance
var globalMetrics Metrics = &NoOpMetrics{}

// Init initializes metrics (no-op for now, can be extended with Prometheus)
func Init() {
	// For now, keep using no-op metrics
}

// Handler returns the metrics handler
func Handler() http.Handler {
	return globalMetrics.Handler()
}

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	globalMetrics.RecordHTTPRequest(method, endpoint, statusCode, duration)
}

// RecordClassification records the outcome of one classification attempt.
func RecordClassification(strategy, status string, duration time.Duration) {
	globalMetrics.RecordClassification(strategy, status, duration)
}

// RecordFallback records a remote-to-heuristic degrade.
func RecordFallback() {
	globalMetrics.RecordFallback()
}
