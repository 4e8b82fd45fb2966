// Package metrics records solver activity as Prometheus collectors.
//
// Collectors live on a caller-supplied registerer so that embedding programs
// decide how (and whether) the numbers are exported.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
)

// Recorder implements ports.Recorder.
type Recorder struct {
	solves   *prometheus.CounterVec   // knapsack_solves_total
	duration *prometheus.HistogramVec // knapsack_solve_duration_seconds
	cells    *prometheus.HistogramVec // knapsack_table_cells
}

var _ ports.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_solves_total",
				Help: "Solve calls, partitioned by variant and status.",
			},
			[]string{"variant", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_solve_duration_seconds",
				Help:    "Wall time of successful solves.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"variant"},
		),
		cells: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_table_cells",
				Help:    "DP table cells written per successful solve.",
				Buckets: prometheus.ExponentialBuckets(16, 8, 8),
			},
			[]string{"variant"},
		),
	}
	for _, c := range []prometheus.Collector{r.solves, r.duration, r.cells} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveSolve(v domain.Variant, st ports.Stats, err error) {
	label := v.Label()
	status := statusOf(err)
	r.solves.WithLabelValues(label, status).Inc()
	if err != nil {
		return
	}
	r.duration.WithLabelValues(label).Observe(st.Duration.Seconds())
	r.cells.WithLabelValues(label).Observe(float64(st.Cells))
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid"
	case errors.Is(err, domain.ErrOverflow):
		return "overflow"
	default:
		return "error"
	}
}
