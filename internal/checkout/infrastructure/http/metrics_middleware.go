package http

import (
	"strconv"
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

func NewMetricsMiddleware(serverMetrics *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		serverMetrics.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		serverMetrics.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}
