package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MetricType represents the type of metric
type MetricType string

const (
	Counter MetricType = "counter"
	Timer   MetricType = "timer"
)

// Metric is a single recorded measurement.
type Metric struct {
	Name      string            `json:"name"`
	Type      MetricType        `json:"type"`
	Value     float64           `json:"value"`
	Labels    map[string]string `json:"labels"`
	Timestamp time.Time         `json:"timestamp"`
	Unit      string            `json:"unit,omitempty"`
}

// Collector buffers SDK metrics in memory and periodically writes them to the log.
// A nil or disabled Collector drops everything.
type Collector struct {
	mu       sync.RWMutex
	metrics  []Metric
	enabled  bool
	interval time.Duration
	logger   zerolog.Logger
	flushCh  chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

const flushThreshold = 100

// NewCollector creates a collector. When enabled and interval > 0 a background
// goroutine flushes the buffer every interval until Shutdown.
func NewCollector(enabled bool, interval time.Duration) *Collector {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Collector{
		metrics:  make([]Metric, 0),
		enabled:  enabled,
		interval: interval,
		logger:   log.Logger,
		flushCh:  make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	if enabled && interval > 0 {
		go c.periodicFlush()
	}

	return c
}

// SetLogger replaces the logger metrics are flushed to.
func (c *Collector) SetLogger(logger zerolog.Logger) {
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

// Enabled reports whether the collector records metrics.
func (c *Collector) Enabled() bool { return c != nil && c.enabled }

// Counter increments a counter metric
func (c *Collector) Counter(name string, value float64, labels map[string]string) {
	if !c.Enabled() {
		return
	}

	c.addMetric(Metric{
		Name:      name,
		Type:      Counter,
		Value:     value,
		Labels:    labels,
		Timestamp: time.Now(),
	})
}

// Timer records a duration measurement
func (c *Collector) Timer(name string, duration time.Duration, labels map[string]string) {
	if !c.Enabled() {
		return
	}

	c.addMetric(Metric{
		Name:      name,
		Type:      Timer,
		Value:     float64(duration.Milliseconds()),
		Labels:    labels,
		Timestamp: time.Now(),
		Unit:      "ms",
	})
}

func (c *Collector) addMetric(metric Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics = append(c.metrics, metric)

	if len(c.metrics) >= flushThreshold {
		select {
		case c.flushCh <- struct{}{}:
		default:
		}
	}
}

// GetMetrics returns a copy of the buffered metrics.
func (c *Collector) GetMetrics() []Metric {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Metric, len(c.metrics))
	copy(result, c.metrics)
	return result
}

// Sum adds up the values of every buffered metric called name.
func (c *Collector) Sum(name string) float64 {
	var total float64
	for _, m := range c.GetMetrics() {
		if m.Name == name {
			total += m.Value
		}
	}
	return total
}

// FlushMetrics drains the buffer into the log.
func (c *Collector) FlushMetrics() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	metrics := make([]Metric, len(c.metrics))
	copy(metrics, c.metrics)
	c.metrics = c.metrics[:0]
	logger := c.logger
	c.mu.Unlock()

	if len(metrics) == 0 {
		return nil
	}

	logger.Debug().Int("count", len(metrics)).Msg("Flushing telemetry metrics")
	for _, metric := range metrics {
		logger.Info().
			Str("name", metric.Name).
			Str("type", string(metric.Type)).
			Float64("value", metric.Value).
			Interface("labels", metric.Labels).
			Time("timestamp", metric.Timestamp).
			Msg("telemetry_metric")
	}

	return nil
}

func (c *Collector) periodicFlush() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			_ = c.FlushMetrics()
		case <-c.flushCh:
			_ = c.FlushMetrics()
		}
	}
}

// Shutdown stops the background flush and drains what is left.
func (c *Collector) Shutdown() error {
	if c == nil {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	return c.FlushMetrics()
}

var (
	globalMu        sync.Mutex
	globalCollector *Collector
)

// InitGlobal replaces the global collector.
func InitGlobal(enabled bool, interval time.Duration) *Collector {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCollector != nil {
		_ = globalCollector.Shutdown()
	}
	globalCollector = NewCollector(enabled, interval)
	return globalCollector
}

// GetGlobal returns the global collector, a disabled one if InitGlobal was never called.
func GetGlobal() *Collector {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCollector == nil {
		globalCollector = NewCollector(false, 0)
	}
	return globalCollector
}

// Shutdown shuts down the global collector
func Shutdown() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCollector != nil {
		return globalCollector.Shutdown()
	}
	return nil
}
