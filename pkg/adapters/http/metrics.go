package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	edits    *prometheus.CounterVec
	saves    prometheus.Counter
	nodes    prometheus.Gauge
	leaves   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arbor_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		edits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_edits_total",
				Help: "Total number of document edits made through the API",
			},
			[]string{"kind"},
		),
		saves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_saves_total",
			Help: "Total number of successful saves",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arbor_tree_nodes",
			Help: "Number of nodes in the open document",
		}),
		leaves: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arbor_tree_leaves",
			Help: "Number of leaves in the open document",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.edits, m.saves, m.nodes, m.leaves)
	return m
}

func (m *metrics) observeTree(root domain.Node) {
	m.nodes.Set(float64(domain.Count(root)))
	m.leaves.Set(float64(len(domain.Leaves(root))))
}

// instrument records request counts and latency by route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		s.metrics.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
