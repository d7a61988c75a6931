package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/to404hanga/hydro_gateway/constants"
)

const (
	contextReasonKey = "X-Query-Reason"

	reasonOK               = "ok"
	reasonInvalidParam     = "invalid_param"
	reasonMongoUnavailable = "mongo_unavailable"
	reasonNotFound         = "not_found"
	reasonInternal         = "internal"
)

var (
	queryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydro_gateway",
			Subsystem: "query",
			Name:      "requests_total",
			Help:      "Query requests total.",
		},
		[]string{"route", "code", "reason"},
	)
	queryDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hydro_gateway",
			Subsystem: "query",
			Name:      "duration_seconds",
			Help:      "Query duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "code", "reason"},
	)
	invalidProblemConfigTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hydro_gateway",
			Subsystem: "document",
			Name:      "invalid_problem_config_total",
			Help:      "Problems returned with an unparsable config.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		queryRequestsTotal,
		queryDurationSeconds,
		invalidProblemConfigTotal,
	)
}

func setReason(c *gin.Context, reason string) {
	c.Set(contextReasonKey, reason)
}

// MetricsMiddleware 统计每个路由的请求数与耗时
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		reason := c.GetString(contextReasonKey)
		if reason == "" {
			switch {
			case code < 400:
				reason = reasonOK
			case code < 500:
				reason = reasonInvalidParam
			default:
				reason = reasonInternal
			}
		}

		labels := prometheus.Labels{
			"route":  route,
			"code":   strconv.Itoa(code),
			"reason": reason,
		}
		queryRequestsTotal.With(labels).Inc()
		queryDurationSeconds.With(labels).Observe(time.Since(start).Seconds())
	}
}

type MetricsHandler struct{}

var _ Handler = (*MetricsHandler)(nil)

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

func (h *MetricsHandler) Register(r *gin.Engine) {
	r.GET(constants.MetricsPath, gin.WrapH(promhttp.Handler()))
}
