package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
	"github.com/jack0rich/BigdataServer/internal/pkg/metrics"
)

// NewAccessLog logs one line per handled request. Health probes are skipped
// to keep the log readable.
func NewAccessLog(logger logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.URL.Path == "/health" {
			ctx.Next()
			return
		}

		start := time.Now()
		ctx.Next()

		logger.Info(
			ctx.Request.Method, " ", ctx.Request.URL.Path,
			" status=", ctx.Writer.Status(),
			" duration=", time.Since(start).Round(time.Microsecond).String(),
			" client=", ctx.ClientIP(),
		)
	}
}

// NewMetrics records request counts and latency per route.
func NewMetrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.
			WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(ctx.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
