package telemetry

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestDisabledCollectorDropsMetrics tests that a disabled collector records nothing
func TestDisabledCollectorDropsMetrics(t *testing.T) {
	c := NewCollector(false, 0)
	c.Counter("calls", 1, nil)
	c.Timer("latency", time.Second, nil)
	if got := len(c.GetMetrics()); got != 0 {
		t.Fatalf("expected 0 metrics, got %d", got)
	}
}

// TestNilCollector tests that a nil collector is safe to use
func TestNilCollector(t *testing.T) {
	var c *Collector
	c.Counter("calls", 1, nil)
	if c.Enabled() {
		t.Fatalf("nil collector reported enabled")
	}
	if err := c.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

// TestCounterSum tests counter aggregation
func TestCounterSum(t *testing.T) {
	c := NewCollector(true, 0)
	defer c.Shutdown()

	for i := 0; i < 5; i++ {
		c.Counter("calls", 1, map[string]string{"cluster": "devnet"})
	}
	c.Timer("latency", 250*time.Millisecond, nil)

	if got := c.Sum("calls"); got != 5 {
		t.Fatalf("expected sum 5, got %v", got)
	}
	metrics := c.GetMetrics()
	if len(metrics) != 6 {
		t.Fatalf("expected 6 metrics, got %d", len(metrics))
	}
	last := metrics[len(metrics)-1]
	if last.Type != Timer || last.Value != 250 || last.Unit != "ms" {
		t.Fatalf("unexpected timer metric: %+v", last)
	}
}

// TestFlushWritesLog tests that flushing drains the buffer into the logger
func TestFlushWritesLog(t *testing.T) {
	var buf bytes.Buffer
	c := NewCollector(true, 0)
	c.SetLogger(zerolog.New(&buf))

	c.Counter("void_client_constructed", 1, map[string]string{"cluster": "localnet"})
	if err := c.FlushMetrics(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if len(c.GetMetrics()) != 0 {
		t.Fatalf("expected empty buffer after flush")
	}
	out := buf.String()
	if !strings.Contains(out, `"name":"void_client_constructed"`) || !strings.Contains(out, "telemetry_metric") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

// TestGlobalDefaultsDisabled tests the lazily created global collector
func TestGlobalDefaultsDisabled(t *testing.T) {
	if GetGlobal().Enabled() {
		t.Fatalf("expected default global collector to be disabled")
	}
	c := InitGlobal(true, 0)
	defer InitGlobal(false, 0)
	if GetGlobal() != c || !c.Enabled() {
		t.Fatalf("InitGlobal did not install an enabled collector")
	}
}
