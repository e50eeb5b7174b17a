package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts requests and observes their latency on reg, labelled by
// method, route and status. Requests to the skipped paths are not measured.
func Metrics(reg prometheus.Registerer, skip ...string) gin.HandlerFunc {
	factory := promauto.With(reg)
	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of requests by method, route and status.",
	}, []string{"method", "path", "status"})
	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of the requests by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(ctx *gin.Context) {
		if _, ok := skipped[ctx.Request.URL.Path]; ok {
			ctx.Next()
			return
		}

		start := time.Now()
		ctx.Next()

		// the route template keeps the label set small
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requests.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
		duration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
