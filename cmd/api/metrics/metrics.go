// Package metrics exposes Prometheus metrics for the dashboard gateway.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"feed-admin/cmd/internal/moderation"
	"feed-admin/paging"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_admin_http_requests_total",
			Help: "Dashboard HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_admin_http_request_duration_seconds",
			Help:    "Dashboard HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	pageFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_admin_page_fetches_total",
			Help: "Page fetches by list and outcome (success, error, stale)",
		},
		[]string{"list", "outcome"},
	)

	pageFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_admin_page_fetch_duration_seconds",
			Help:    "Page fetch latency against the feed service",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"list"},
	)

	moderationActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_admin_moderation_actions_total",
			Help: "Moderation commands by kind and result",
		},
		[]string{"kind", "result"},
	)

	moderationActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_admin_moderation_action_duration_seconds",
			Help:    "Moderation command latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	activeViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_admin_active_views",
			Help: "Mounted dashboard views",
		},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_admin_notifications_total",
			Help: "Notifications by level and whether they were suppressed as duplicates",
		},
		[]string{"level", "suppressed"},
	)
)

// PrometheusMiddleware Gin 미들웨어로 HTTP 지표를 수집한다.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// PagingObserver records every pager fetch.
type PagingObserver struct{}

var _ paging.Observer = PagingObserver{}

func (PagingObserver) FetchCompleted(list string, outcome paging.Outcome, elapsed time.Duration) {
	pageFetchesTotal.WithLabelValues(list, string(outcome)).Inc()
	if outcome != paging.OutcomeStale {
		pageFetchDuration.WithLabelValues(list).Observe(elapsed.Seconds())
	}
}

// RecordAction is a moderation.Listener.
func RecordAction(_ context.Context, ev moderation.Event) {
	result := "success"
	if !ev.Succeeded() {
		result = "failure"
	}
	moderationActionsTotal.WithLabelValues(string(ev.Action.Kind), result).Inc()
	moderationActionDuration.WithLabelValues(string(ev.Action.Kind)).Observe(ev.Elapsed.Seconds())
}

func SetActiveViews(n int) {
	activeViews.Set(float64(n))
}

func RecordNotification(level string, suppressed bool) {
	notificationsTotal.WithLabelValues(level, strconv.FormatBool(suppressed)).Inc()
}
