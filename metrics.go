package prettyhttp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the transport's logging
// activity. It is safe for concurrent use.
type MetricsCollector struct {
	exchangesLogged  *prometheus.CounterVec
	exchangesSkipped prometheus.Counter
	linesEmitted     prometheus.Counter
	renderDuration   prometheus.Histogram
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		exchangesLogged: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "prettyhttp_exchanges_logged_total",
				Help: "Total number of HTTP exchanges rendered, by outcome",
			},
			[]string{"outcome"},
		),
		exchangesSkipped: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "prettyhttp_exchanges_skipped_total",
				Help: "Total number of HTTP exchanges suppressed by the filter",
			},
		),
		linesEmitted: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "prettyhttp_lines_emitted_total",
				Help: "Total number of transcript lines delivered to the sink",
			},
		),
		renderDuration: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prettyhttp_render_duration_seconds",
				Help:    "Time spent rendering one exchange transcript",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *MetricsCollector) recordExchange(outcome string) {
	if m == nil {
		return
	}
	m.exchangesLogged.WithLabelValues(outcome).Inc()
}

func (m *MetricsCollector) recordSkipped() {
	if m == nil {
		return
	}
	m.exchangesSkipped.Inc()
}

func (m *MetricsCollector) recordLine() {
	if m == nil {
		return
	}
	m.linesEmitted.Inc()
}

func (m *MetricsCollector) recordRender(d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}
