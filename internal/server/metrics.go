package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/flamefold/pkg/pipeline"
)

// metrics holds the server's Prometheus instrumentation. Each Server owns
// its own registry so multiple instances can coexist in one process.
type metrics struct {
	registry       *prometheus.Registry
	renders        *prometheus.CounterVec
	renderErrors   prometheus.Counter
	cacheHits      *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flamefold",
			Name:      "renders_total",
			Help:      "Rendered artifacts by format.",
		}, []string{"format"}),
		renderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flamefold",
			Name:      "render_errors_total",
			Help:      "Failed render requests.",
		}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flamefold",
			Name:      "cache_hits_total",
			Help:      "Pipeline cache hits by stage.",
		}, []string{"stage"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flamefold",
			Name:      "render_duration_seconds",
			Help:      "End-to-end render request duration.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.renders, m.renderErrors, m.cacheHits, m.renderDuration)
	return m
}

func (m *metrics) observeCache(info pipeline.CacheInfo) {
	if info.TreeHit {
		m.cacheHits.WithLabelValues("tree").Inc()
	}
	if info.LayoutHit {
		m.cacheHits.WithLabelValues("layout").Inc()
	}
	if info.RenderHit {
		m.cacheHits.WithLabelValues("render").Inc()
	}
}
