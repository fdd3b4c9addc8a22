package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/fitquest/internal/logger"
)

// RequestLogger logs method, path, status, and duration for every request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
