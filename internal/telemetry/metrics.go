package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hamilton/constraint"
	"github.com/katalvlaran/hamilton/search"
)

// Solve outcomes recorded by ObserveSolve.
const (
	OutcomeFound   = "found"
	OutcomeNoCycle = "no_cycle"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// Metrics holds the search counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Candidates   prometheus.Counter
	Backtracks   prometheus.Counter
	Propagations prometheus.Counter
	Rejections   *prometheus.CounterVec
	Solves       *prometheus.CounterVec
	Duration     prometheus.Histogram
}

// NewMetrics creates and registers every collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hamcycle",
			Name:      "candidates_total",
			Help:      "Tentative path extensions tried",
		}),
		Backtracks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hamcycle",
			Name:      "backtracks_total",
			Help:      "Path extensions undone",
		}),
		Propagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hamcycle",
			Name:      "propagations_total",
			Help:      "Edges decided by constraint propagation",
		}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hamcycle",
			Name:      "rejections_total",
			Help:      "Infeasible extensions by verdict",
		}, []string{"verdict"}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hamcycle",
			Name:      "solves_total",
			Help:      "Completed searches by outcome",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hamcycle",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of a search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.Candidates, m.Backtracks, m.Propagations,
		m.Rejections, m.Solves, m.Duration)

	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveSolve records the statistics and outcome of one search.
func (m *Metrics) ObserveSolve(stats search.Stats, outcome string, elapsed time.Duration) {
	m.Candidates.Add(float64(stats.Candidates))
	m.Backtracks.Add(float64(stats.Backtracks))
	m.Propagations.Add(float64(stats.Propagations))
	for _, v := range constraint.Verdicts {
		if n := stats.Rejections[v]; n > 0 {
			m.Rejections.WithLabelValues(v.String()).Add(float64(n))
		}
	}
	m.Solves.WithLabelValues(outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

// WriteFile writes the registry in the Prometheus text format to path.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
