package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks client statistics using atomic operations for thread-safety.
// When Prometheus collectors are attached every recording is mirrored there.
type Metrics struct {
	Requests          atomic.Int64
	RequestFailures   atomic.Int64
	Retries           atomic.Int64
	OptimisticApplies atomic.Int64
	Rollbacks         atomic.Int64
	Invalidations     atomic.Int64
	StoreReloads      atomic.Int64
	StartTime         time.Time

	prom *Collectors
}

// NewMetrics creates a new Metrics instance without Prometheus collectors
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// WithCollectors attaches Prometheus collectors and returns m
func (m *Metrics) WithCollectors(c *Collectors) *Metrics {
	m.prom = c
	return m
}

// Collectors returns the attached Prometheus collectors, or nil
func (m *Metrics) Collectors() *Collectors {
	return m.prom
}

// RecordAPICall records one finished HTTP round trip against the task API
func (m *Metrics) RecordAPICall(endpoint, method string, statusCode int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.Requests.Add(1)
	if err != nil || statusCode >= 400 {
		m.RequestFailures.Add(1)
	}
	if m.prom != nil {
		m.prom.RecordAPICall(endpoint, method, statusCode, duration, err)
	}
}

// IncRetries increments the retry counter
func (m *Metrics) IncRetries() {
	if m == nil {
		return
	}
	m.Retries.Add(1)
}

// IncOptimisticApplies counts a local write made ahead of server confirmation
func (m *Metrics) IncOptimisticApplies() {
	if m == nil {
		return
	}
	m.OptimisticApplies.Add(1)
	if m.prom != nil {
		m.prom.MutationsTotal.WithLabelValues("optimistic").Inc()
	}
}

// IncRollbacks counts a local write reverted after a failed request
func (m *Metrics) IncRollbacks() {
	if m == nil {
		return
	}
	m.Rollbacks.Add(1)
	if m.prom != nil {
		m.prom.MutationsTotal.WithLabelValues("rollback").Inc()
	}
}

// IncInvalidations increments the invalidation counter
func (m *Metrics) IncInvalidations() {
	if m == nil {
		return
	}
	m.Invalidations.Add(1)
	if m.prom != nil {
		m.prom.InvalidationsTotal.Inc()
	}
}

// IncStoreReloads increments the store reload counter
func (m *Metrics) IncStoreReloads() {
	if m == nil {
		return
	}
	m.StoreReloads.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests          int64     `json:"requests"`
	RequestFailures   int64     `json:"request_failures"`
	Retries           int64     `json:"retries"`
	OptimisticApplies int64     `json:"optimistic_applies"`
	Rollbacks         int64     `json:"rollbacks"`
	Invalidations     int64     `json:"invalidations"`
	StoreReloads      int64     `json:"store_reloads"`
	StartTime         time.Time `json:"start_time"`
	Uptime            string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:          m.Requests.Load(),
		RequestFailures:   m.RequestFailures.Load(),
		Retries:           m.Retries.Load(),
		OptimisticApplies: m.OptimisticApplies.Load(),
		Rollbacks:         m.Rollbacks.Load(),
		Invalidations:     m.Invalidations.Load(),
		StoreReloads:      m.StoreReloads.Load(),
		StartTime:         m.StartTime,
		Uptime:            time.Since(m.StartTime).String(),
	}
}
