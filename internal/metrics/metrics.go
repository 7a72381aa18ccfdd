// Package metrics provides Prometheus metrics for the SkillSprint API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequestsTotal records handled HTTP requests.
	// Labels:
	//   - method: HTTP method
	//   - path: registered route template (not the raw URL)
	//   - status: response status code
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration records request latency per route.
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// llmCallsTotal records calls to the plan-generation backend.
	// Labels:
	//   - operation: logical operation (e.g., "roadmap_plan", "quiz")
	//   - status: "success" or "failed"
	llmCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_calls_total",
			Help: "Total number of LLM completion calls",
		},
		[]string{"operation", "status"},
	)

	// llmCallDuration records LLM call latency per operation.
	llmCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_duration_seconds",
			Help:    "Duration of LLM completion calls in seconds",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(llmCallsTotal)
	prometheus.MustRegister(llmCallDuration)
}

// RecordLLMCall records one LLM call with its outcome and duration.
func RecordLLMCall(operation, status string, duration time.Duration) {
	llmCallsTotal.WithLabelValues(operation, status).Inc()
	llmCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Middleware instruments every request with count and latency metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
