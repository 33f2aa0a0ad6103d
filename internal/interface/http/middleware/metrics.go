package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/booklist/pkg/metrics"
)

// Metrics HTTP指标中间件
// path标签使用路由模板(/books/:id),未匹配的路由统一记为"unmatched"
func Metrics() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		metrics.HTTPRequestsInProgress.Inc()
		defer metrics.HTTPRequestsInProgress.Dec()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
