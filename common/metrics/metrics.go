// Package metrics exposes Prometheus collectors for the classify API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the classify API collectors
type Recorder struct {
	requests       *prometheus.CounterVec
	factSources    *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder and registers its collectors with
// registerer. A nil registerer leaves the collectors unregistered.
func NewRecorder(registerer prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classify_requests_total",
			Help: "Classification requests by outcome",
		}, []string{"outcome"}),
		factSources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classify_fun_fact_source_total",
			Help: "Fun facts served by source rule",
		}, []string{"source"}),
		lookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "classify_trivia_lookup_duration_seconds",
			Help:    "Trivia service lookup duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"result"}),
	}

	if registerer != nil {
		registerer.MustRegister(r.requests, r.factSources, r.lookupDuration)
	}
	return r
}

// ObserveRequest counts a classification attempt ("ok" or "invalid").
func (r *Recorder) ObserveRequest(outcome string) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(outcome).Inc()
}

// ObserveFactSource counts the rule that produced a fun fact.
func (r *Recorder) ObserveFactSource(source string) {
	if r == nil {
		return
	}
	r.factSources.WithLabelValues(source).Inc()
}

// ObserveLookup records a trivia lookup.
func (r *Recorder) ObserveLookup(result string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.lookupDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}
