package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	collectionReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urbanops_collection_reloads_total",
			Help: "Collection reloads by entity kind and result.",
		},
		[]string{"kind", "result"},
	)

	collectionSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "urbanops_collection_size",
			Help: "Number of records in the current snapshot of each collection.",
		},
		[]string{"kind"},
	)

	staleMetricLoadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "urbanops_stale_metric_loads_total",
			Help: "Sensor metric loads discarded because the selection changed before they completed.",
		},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urbanops_http_requests_total",
			Help: "Total number of HTTP requests received by the API.",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "urbanops_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		collectionReloadsTotal,
		collectionSize,
		staleMetricLoadsTotal,
		httpRequestsTotal,
		httpRequestDurationSeconds,
	)
}

// ObserveReload учитывает результат перезагрузки коллекции. Размер обновляется только при успехе
func ObserveReload(kind models.Kind, size int, err error) {
	if err != nil {
		collectionReloadsTotal.WithLabelValues(string(kind), "error").Inc()
		return
	}
	collectionReloadsTotal.WithLabelValues(string(kind), "ok").Inc()
	collectionSize.WithLabelValues(string(kind)).Set(float64(size))
}

func ObserveStaleMetricLoad() {
	staleMetricLoadsTotal.Inc()
}

// Middleware записывает количество и длительность HTTP-запросов
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
		httpRequestDurationSeconds.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}
