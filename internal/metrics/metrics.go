// Package metrics holds the Prometheus collectors describing calculations.
package metrics

import (
	"net/http"

	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder counts calculations on its own registry.
type Recorder struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	termCounts   *prometheus.HistogramVec
}

// New creates a Recorder with process and Go runtime collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sequencer_calculations_total",
				Help: "Total number of sequence calculations",
			},
			[]string{"kind", "outcome", "source"},
		),
		termCounts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sequencer_term_count",
				Help:    "Number of terms requested by successful calculations",
				Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000},
			},
			[]string{"kind"},
		),
	}
	r.registry.MustRegister(
		r.calculations,
		r.termCounts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe records the outcome of one calculation. source names the surface
// (http, web, mcp) that served it. A nil Recorder ignores the call.
func (r *Recorder) Observe(source string, req sequence.Request, err error) {
	if r == nil {
		return
	}
	kind := req.Kind.String()
	outcome := Outcome(err)
	r.calculations.WithLabelValues(kind, outcome, source).Inc()
	if outcome == OutcomeOK {
		r.termCounts.WithLabelValues(kind).Observe(float64(req.TermCount))
	}
}

// Outcome classifies a calculation error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case sequence.IsValidation(err):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Calculations exposes the counter for inspection.
func (r *Recorder) Calculations() *prometheus.CounterVec {
	return r.calculations
}
