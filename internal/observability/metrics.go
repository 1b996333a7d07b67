package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps per-route request and error counters in process memory.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
	}
}

// RecordRequest increments the counter for a completed request.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[counterKey(method, path, strconv.Itoa(status))]++
}

// RecordError increments the counter for a failed request by error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[counterKey(method, path, code)]++
}

func counterKey(method, path, label string) string {
	return method + " " + path + " " + label
}
