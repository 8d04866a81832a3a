package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors updated by Run.
type Metrics struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	visited  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rivercross_solve_total",
			Help: "Solves by solver and outcome (solved, unsolvable, error)",
		}, []string{"solver", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rivercross_solve_duration_seconds",
			Help:    "Wall time of a single solve in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"solver"}),
		visited: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rivercross_states_visited",
			Help:    "Configurations recorded by a search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"solver"}),
	}
}

func (m *Metrics) observe(r Row) {
	if m == nil {
		return
	}
	s := string(r.Solver)
	m.solves.WithLabelValues(s, r.Outcome()).Inc()
	m.duration.WithLabelValues(s).Observe(r.Elapsed.Seconds())
	if r.Solver != SolverHeuristic {
		m.visited.WithLabelValues(s).Observe(float64(r.Visited))
	}
}
