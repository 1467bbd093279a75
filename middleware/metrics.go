package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for the API.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	analysesTotal    *prometheus.CounterVec
	analysisScores   prometheus.Histogram
	rateLimitedTotal prometheus.Counter
}

// NewMetrics creates a Metrics instance with registered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_optimizer_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"path", "method", "status"},
		),

		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "content_optimizer_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),

		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_optimizer_analyses_total",
				Help: "Total number of content analyses performed",
			},
			[]string{"content_type", "result"},
		),

		analysisScores: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "content_optimizer_analysis_score",
				Help:    "Distribution of overall analysis scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),

		rateLimitedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "content_optimizer_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
}

// Handler records request counts and latency for every route.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

// ObserveAnalysis records the outcome of one analysis call.
func (m *Metrics) ObserveAnalysis(contentType string, score float64, failed bool) {
	result := "ok"
	if failed {
		result = "error"
	}
	if contentType == "" {
		contentType = "unspecified"
	}
	m.analysesTotal.WithLabelValues(contentType, result).Inc()
	if !failed {
		m.analysisScores.Observe(score)
	}
}

// ObserveRateLimited counts a rejected request.
func (m *Metrics) ObserveRateLimited() {
	m.rateLimitedTotal.Inc()
}
