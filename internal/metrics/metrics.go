// Package metrics exports history activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sculpt-editor/action"
)

// History holds the collectors fed by history hooks.
type History struct {
	transitions *prometheus.CounterVec
	actions     prometheus.Counter
	failures    *prometheus.CounterVec
	undoDepth   prometheus.Gauge
	redoDepth   prometheus.Gauge
}

func NewHistory() *History {
	return &History{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sculpt_history_transitions_total",
				Help: "Total number of committed, undone and redone units",
			},
			[]string{"op"},
		),
		actions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sculpt_history_committed_actions_total",
			Help: "Total number of actions in committed units",
		}),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sculpt_history_failures_total",
				Help: "Total number of rejected history operations",
			},
			[]string{"op"},
		),
		undoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sculpt_history_undo_depth",
			Help: "Number of units that can be undone",
		}),
		redoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sculpt_history_redo_depth",
			Help: "Number of units that can be redone",
		}),
	}
}

// Register adds all collectors to r.
func (h *History) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{h.transitions, h.actions, h.failures, h.undoDepth, h.redoDepth} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns history hooks updating the collectors.
func (h *History) Hooks() action.Hooks {
	transition := func(e action.Event) {
		h.transitions.WithLabelValues(e.Op).Inc()
		h.undoDepth.Set(float64(e.UndoDepth))
		h.redoDepth.Set(float64(e.RedoDepth))
	}
	return action.Hooks{
		OnCommit: func(e action.Event) {
			transition(e)
			h.actions.Add(float64(e.Actions))
		},
		OnUndo: transition,
		OnRedo: transition,
		OnError: func(e action.Event) {
			h.failures.WithLabelValues(e.Op).Inc()
		},
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
