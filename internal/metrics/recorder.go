// Package metrics records Prometheus metrics about sequence generation.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "fibseq"

// Recorder owns a private registry so that several recorders (one per test,
// for instance) never collide on the global default registry.
type Recorder struct {
	registry    *prometheus.Registry
	runs        prometheus.Counter
	terms       prometheus.Counter
	wrapped     prometheus.Counter
	inputErrors prometheus.Counter
	duration    prometheus.Histogram
}

// NewRecorder creates a Recorder with the generation metrics and the Go
// runtime collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of sequence generations performed.",
		}),
		terms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terms_generated_total",
			Help:      "Total number of Fibonacci terms produced.",
		}),
		wrapped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wrapped_sequences_total",
			Help:      "Generations whose later terms wrapped modulo 2^64.",
		}),
		inputErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_errors_total",
			Help:      "Term counts rejected as malformed and treated as zero.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating a sequence.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}),
	}

	r.registry.MustRegister(
		r.runs,
		r.terms,
		r.wrapped,
		r.inputErrors,
		r.duration,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveGeneration records one generation of produced terms. wrapped
// reports whether any term exceeded the exact uint64 range.
func (r *Recorder) ObserveGeneration(produced int, wrapped bool, d time.Duration) {
	r.runs.Inc()
	r.terms.Add(float64(produced))
	if wrapped {
		r.wrapped.Inc()
	}
	r.duration.Observe(d.Seconds())
}

// IncInputErrors records a malformed term count.
func (r *Recorder) IncInputErrors() {
	r.inputErrors.Inc()
}

// WriteText writes every gathered metric family to w in the Prometheus text
// exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
