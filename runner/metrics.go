// File: metrics.go
// Role: optional prometheus instrumentation (domain-stack wiring), wired
// through Observers so attaching metrics never requires touching Base.Go
// itself. Grounded on the metrics.Metrics pattern of the pack's logistics
// example: promauto-registered vectors, namespace/subsystem from the
// caller.
package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/localsearch/cost"
)

// Metrics holds a single runner instance's prometheus series. Build one
// with NewMetrics and wire it into Observers via its own methods.
type Metrics struct {
	Iterations   prometheus.Counter
	BestCost     prometheus.Gauge
	Restarts     prometheus.Counter
}

// NewMetrics registers a Metrics set under namespace/subsystem, labeled by
// runner. Call once per runner instance; promauto registers against the
// default registry.
func NewMetrics(namespace, subsystem, runnerName string) *Metrics {
	labels := prometheus.Labels{"runner": runnerName}
	return &Metrics{
		Iterations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "iterations_total",
			Help:        "Completed runner iterations.",
			ConstLabels: labels,
		}),
		BestCost: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "best_cost",
			Help:        "Best total cost found so far.",
			ConstLabels: labels,
		}),
		Restarts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "restarts_total",
			Help:        "Solver-initiated restarts of this runner.",
			ConstLabels: labels,
		}),
	}
}

// Observers builds an Observers value wired to this Metrics instance, to
// pass as Base.Observers.
func (m *Metrics) Observers() Observers {
	return Observers{
		OnIteration: func(uint64) { m.Iterations.Inc() },
		OnNewBest:   func(_ uint64, c cost.Structure) { m.BestCost.Set(c.Total) },
		OnRestart:   func(uint64) { m.Restarts.Inc() },
	}
}
