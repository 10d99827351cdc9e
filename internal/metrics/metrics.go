// Package metrics defines Prometheus metrics for woo-cli.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "woo"

// Registry holds every woo-cli metric. It is separate from the default
// registry so the CLI summary only reports its own series.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Request metrics.
var (
	RequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of API requests dispatched.",
	}, []string{"method", "auth", "status"})

	RequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	RequestErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_request_errors_total",
		Help:      "Total number of failed API requests by kind.",
	}, []string{"kind"})
)

// Pagination metrics.
var (
	PagesFetched = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_fetched_total",
		Help:      "Total number of collection pages fetched.",
	})

	ItemsFetched = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_fetched_total",
		Help:      "Total number of collection items decoded.",
	})
)

// Cache metrics.
var (
	CacheHitsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of reference-data cache hits.",
	}, []string{"store"})

	CacheMissesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of reference-data cache misses.",
	}, []string{"store"})
)

// WriteSummary writes every non-zero counter in Registry as
// "name{labels} value" lines, sorted by name. Histograms report their
// sample count.
func WriteSummary(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			if value == 0 {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
