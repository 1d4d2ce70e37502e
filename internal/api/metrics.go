package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nc_news_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nc_news_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nc_news_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	commentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nc_news_comments_created_total",
			Help: "Total number of comments posted",
		},
	)

	commentsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nc_news_comments_deleted_total",
			Help: "Total number of comments deleted",
		},
	)

	articleVotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nc_news_article_votes_total",
			Help: "Sum of vote deltas applied to articles, split by sign",
		},
		[]string{"direction"},
	)
)

// metricsMiddleware records request counts and latency. Routes are labelled by
// their template so ids do not create new series.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func recordVotes(delta int) {
	switch {
	case delta > 0:
		articleVotesTotal.WithLabelValues("up").Add(float64(delta))
	case delta < 0:
		articleVotesTotal.WithLabelValues("down").Add(float64(-delta))
	}
}

// metricsHandler exposes the default Prometheus registry
func metricsHandler() http.Handler {
	return promhttp.Handler()
}
