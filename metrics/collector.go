package metrics

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gamegraph"

// Summary reports the work done by one exploration and solving run.
type Summary struct {
	StartTime   time.Time
	Duration    time.Duration
	Canonical   int64 // Canonical classes registered
	Isomorphism int64 // Exact isomorphism tests run
	Expanded    int64
	Terminal    int64
	Solved      int64
}

type Collector interface {
	Start()
	AddCanonical()
	AddIsomorphismTest()
	AddExpansion()
	AddTerminal()
	AddSolved()
	Complete() Summary
}

// PrometheusCollector counts engine work in a private registry so that a
// batch run can dump it for a textfile collector.
type PrometheusCollector struct {
	registry    *prometheus.Registry
	startTime   time.Time
	canonical   atomic.Int64
	isomorphism atomic.Int64
	expanded    atomic.Int64
	terminal    atomic.Int64
	solved      atomic.Int64

	canonicalTotal   prometheus.Counter
	isomorphismTotal prometheus.Counter
	expandedTotal    prometheus.Counter
	terminalTotal    prometheus.Counter
	solvedTotal      prometheus.Counter
	durationSeconds  prometheus.Gauge
}

func NewCollector(game string) *PrometheusCollector {
	labels := prometheus.Labels{"game": game}
	counter := func(subsystem, name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	c := &PrometheusCollector{
		registry:         prometheus.NewRegistry(),
		canonicalTotal:   counter("canonical", "states_total", "Canonical states registered"),
		isomorphismTotal: counter("canonical", "isomorphism_tests_total", "Exact isomorphism tests run"),
		expandedTotal:    counter("explorer", "expansions_total", "Canonical states expanded"),
		terminalTotal:    counter("explorer", "terminal_states_total", "Canonical states classified as decided"),
		solvedTotal:      counter("solver", "states_total", "Canonical states assigned a value"),
		durationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "run_duration_seconds",
			Help:        "Time from Start to Complete",
			ConstLabels: labels,
		}),
	}
	c.registry.MustRegister(
		c.canonicalTotal,
		c.isomorphismTotal,
		c.expandedTotal,
		c.terminalTotal,
		c.solvedTotal,
		c.durationSeconds,
	)
	return c
}

func (c *PrometheusCollector) Start() {
	c.startTime = time.Now()
}

func (c *PrometheusCollector) AddCanonical() {
	c.canonical.Add(1)
	c.canonicalTotal.Inc()
}

func (c *PrometheusCollector) AddIsomorphismTest() {
	c.isomorphism.Add(1)
	c.isomorphismTotal.Inc()
}

func (c *PrometheusCollector) AddExpansion() {
	c.expanded.Add(1)
	c.expandedTotal.Inc()
}

func (c *PrometheusCollector) AddTerminal() {
	c.terminal.Add(1)
	c.terminalTotal.Inc()
}

func (c *PrometheusCollector) AddSolved() {
	c.solved.Add(1)
	c.solvedTotal.Inc()
}

func (c *PrometheusCollector) Complete() Summary {
	duration := time.Since(c.startTime)
	c.durationSeconds.Set(duration.Seconds())
	return Summary{
		StartTime:   c.startTime,
		Duration:    duration,
		Canonical:   c.canonical.Load(),
		Isomorphism: c.isomorphism.Load(),
		Expanded:    c.expanded.Load(),
		Terminal:    c.terminal.Load(),
		Solved:      c.solved.Load(),
	}
}

func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the registry in the text exposition format.
func (c *PrometheusCollector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()              {}
func (m *dummyCollector) AddCanonical()       {}
func (m *dummyCollector) AddIsomorphismTest() {}
func (m *dummyCollector) AddExpansion()       {}
func (m *dummyCollector) AddTerminal()        {}
func (m *dummyCollector) AddSolved()          {}
func (m *dummyCollector) Complete() Summary   { return Summary{} }
