// Package metrics exposes Prometheus instrumentation for the T-BSP/handoff
// core. The core itself never imports this package: Recorder is wired in
// from the caller side via tbsp.Root.OnOverflow and handoff.Machine call
// sites, keeping the hard core free of the metrics dependency.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the counters and gauges this node reports at /metrics.
type Recorder struct {
	CapacityExhausted prometheus.Counter
	OverflowReset      prometheus.Counter
	ActiveCells        prometheus.Gauge
	Handoffs           *prometheus.CounterVec
}

// NewRecorder registers the tbspgo metric family against the default
// Prometheus registry.
func NewRecorder() *Recorder {
	return &Recorder{
		CapacityExhausted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tbspgo_capacity_exhausted_total",
			Help: "Number of InsertPose calls that failed because the cell pool was full.",
		}),
		OverflowReset: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tbspgo_cell_overflow_reset_total",
			Help: "Number of times a full cell's pose ring was discarded before the estimator drained it.",
		}),
		ActiveCells: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tbspgo_active_cells",
			Help: "Current value of the T-BSP root's active_count.",
		}),
		Handoffs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tbspgo_handoffs_total",
			Help: "Number of handoff packets emitted, labelled by dateline/polar flags.",
		}, []string{"dateline", "polar"}),
	}
}

// ObserveHandoff records one emitted handoff packet's flag combination.
func (r *Recorder) ObserveHandoff(dateline, polar bool) {
	r.Handoffs.WithLabelValues(boolLabel(dateline), boolLabel(polar)).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
