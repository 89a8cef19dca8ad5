package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"numbersense/classify-api/common/classify"
	"numbersense/classify-api/common/config"
	"numbersense/classify-api/common/funfact"
	"numbersense/classify-api/common/metrics"
)

// newService assembles the classification pipeline from cfg. The returned
// registry is nil when metrics are disabled.
func newService(cfg config.Config, httpClient *http.Client) (*classify.Service, *prometheus.Registry) {
	var (
		registry *prometheus.Registry
		recorder *metrics.Recorder
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewRecorder(registry)
	}

	factsCfg := funfact.Config{ParityTemplate: cfg.Facts.ParityTemplate}
	if cfg.Trivia.Enabled {
		factsCfg.Lookup = funfact.NewTriviaClient(cfg.Trivia.BaseURL, cfg.Trivia.Timeout, httpClient)
	}
	if recorder != nil {
		factsCfg.Observer = recorder
		return classify.NewService(funfact.NewResolver(factsCfg), recorder), registry
	}
	return classify.NewService(funfact.NewResolver(factsCfg), nil), nil
}
