package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	servicesComplete prometheus.Counter
}

// NewPrometheusAdapter registers the service metrics on reg.
func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	a := &PrometheusAdapter{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bikeshop",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bikeshop",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		servicesComplete: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bikeshop",
			Name:      "service_records_completed_total",
			Help:      "Service records marked as done.",
		}),
	}

	reg.MustRegister(a.requestsTotal, a.requestDuration, a.servicesComplete)

	return a
}

func (a *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method

	a.requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	a.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (a *PrometheusAdapter) RecordServiceCompleted() {
	a.servicesComplete.Inc()
}
