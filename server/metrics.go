package main

import (
	"net/http"
	"sort"
	"sync"
	"time"
)

// requestMetrics keeps a rolling window of request timings for the
// /api/metrics endpoint. Summary percentiles look at the last 100
// samples; the buffer holds the last 1000.
type requestMetrics struct {
	mu      sync.Mutex
	samples []sample
}

type sample struct {
	endpoint string
	ms       float64
	at       time.Time
}

const maxSamples = 1000

func newRequestMetrics() *requestMetrics { return &requestMetrics{} }

func (m *requestMetrics) record(endpoint string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, sample{endpoint: endpoint, ms: float64(d.Microseconds()) / 1000, at: time.Now()})
	if len(m.samples) > maxSamples {
		m.samples = m.samples[len(m.samples)-maxSamples:]
	}
}

func (m *requestMetrics) summary() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.samples) == 0 {
		return map[string]any{"count": 0}
	}
	recent := m.samples
	if len(recent) > 100 {
		recent = recent[len(recent)-100:]
	}
	durations := make([]float64, len(recent))
	total := 0.0
	for i, s := range recent {
		durations[i] = s.ms
		total += s.ms
	}
	sort.Float64s(durations)
	p95 := durations[len(durations)-1]
	if len(durations) > 20 {
		p95 = durations[int(float64(len(durations))*0.95)]
	}
	return map[string]any{
		"count":  len(m.samples),
		"avg_ms": total / float64(len(durations)),
		"p50_ms": durations[len(durations)/2],
		"p95_ms": p95,
	}
}

// timed wraps a handler and records its duration under the given name.
func (m *requestMetrics) timed(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() { m.record(name, time.Since(start)) }()
		h(w, r)
	}
}
