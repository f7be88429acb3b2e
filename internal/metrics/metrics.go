// Package metrics holds the Prometheus collectors shared by the pipeline and
// the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes.
const (
	OutcomeSuccess          = "success"
	OutcomeSearchFailed     = "search_failed"
	OutcomeGenerationFailed = "generation_failed"
)

var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usecase_runs_total",
			Help: "Total number of pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "usecase_stage_duration_seconds",
			Help:    "Duration of the remote search and generation calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"stage"},
	)

	LinksExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usecase_links_extracted_total",
			Help: "Reference links extracted from search results by domain",
		},
		[]string{"domain"},
	)

	RunsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "usecase_runs_active",
			Help: "Number of pipeline runs in progress",
		},
	)
)
