package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/francofil/proyecto-final-algoritmos/core/metrics"
)

// PromSink records solve events in Prometheus metrics.
type PromSink struct {
	solves     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	duration   prometheus.Histogram
	expansions prometheus.Histogram
}

// NewPromSink registers planner metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_solves_total",
		Help: "Total number of optimization runs",
	}, []string{"truncated"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_rejections_total",
		Help: "Requests refused during validation",
	}, []string{"field"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_solve_duration_seconds",
		Help:    "Wall-clock time spent per optimization run",
		Buckets: prometheus.DefBuckets,
	})
	expansions := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_solve_expansions",
		Help:    "Frontier nodes expanded per optimization run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rejections); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rejections = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(expansions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			expansions = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{solves: solves, rejections: rejections, duration: duration, expansions: expansions}, nil
}

// RecordSolve increments the solve counter and observes run histograms.
func (s *PromSink) RecordSolve(ev coremetrics.SolveEvent) error {
	s.solves.WithLabelValues(strconv.FormatBool(ev.Truncated)).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	s.expansions.Observe(float64(ev.Expansions))
	return nil
}

// RecordRejection counts a validation refusal by offending field.
func (s *PromSink) RecordRejection(ev coremetrics.RejectionEvent) error {
	s.rejections.WithLabelValues(ev.Field).Inc()
	return nil
}
