package routes

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// RequestLogger はリクエストごとにメソッド、パス、ステータス、処理時間を記録するミドルウェアです。
// プリフライト(OPTIONS)はdebugレベルで記録します。
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case c.Request.Method == http.MethodOptions:
			logger.Debug("preflight", fields...)
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
