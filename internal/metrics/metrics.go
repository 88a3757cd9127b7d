// Package metrics holds the Prometheus metrics of the audit pipeline.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "metaaudit"

type Metrics struct {
	JobsFinished       *prometheus.CounterVec
	JobDurationSeconds prometheus.Histogram
	ItemsProcessed     *prometheus.CounterVec
	SuggestionsCreated *prometheus.CounterVec
	Resolutions        *prometheus.CounterVec
	WriteBackFailures  prometheus.Counter
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		JobsFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crawl",
			Name:      "jobs_finished_total",
			Help:      "Crawl jobs that reached a terminal status",
		}, []string{"status"}),
		JobDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "crawl",
			Name:      "job_duration_seconds",
			Help:      "Wall time of crawl jobs from claim to terminal status",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 0.1s to ~27min
		}),
		ItemsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crawl",
			Name:      "items_processed_total",
			Help:      "Content items processed by crawl jobs",
		}, []string{"result"}),
		SuggestionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggestions",
			Name:      "generated_total",
			Help:      "Suggestion generation attempts",
		}, []string{"result"}),
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggestions",
			Name:      "resolved_total",
			Help:      "Suggestions resolved, by terminal status",
		}, []string{"status"}),
		WriteBackFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggestions",
			Name:      "write_back_failures_total",
			Help:      "Content store rejections during approval",
		}),
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

func (m *Metrics) JobFinished(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.JobsFinished.WithLabelValues(status).Inc()
	m.JobDurationSeconds.Observe(d.Seconds())
}

func (m *Metrics) ItemProcessed(ok bool) {
	if m == nil {
		return
	}
	m.ItemsProcessed.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) SuggestionGenerated(ok bool) {
	if m == nil {
		return
	}
	m.SuggestionsCreated.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) SuggestionResolved(status string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(status).Inc()
}

func (m *Metrics) WriteBackFailed() {
	if m == nil {
		return
	}
	m.WriteBackFailures.Inc()
}
