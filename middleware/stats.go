package middleware

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/content-optimizer/backend/logging"
)

// Stats tracks unique visitors and periodically persists the usage
// statistics. Analysis outcomes are recorded by the analyze handler, which
// knows the keywords and the score.
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	var requests atomic.Int64
	return func(c *gin.Context) {
		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Persist every 100 requests, off the request path.
		if requests.Add(1)%100 == 0 {
			go stats.Save()
		}
	}
}
