package middleware

import (
	"net/http"

	"github.com/satyarajasree/digital-marketing-backend/utils"

	"github.com/gin-gonic/gin"
)

// SubmissionThrottle limits public form submissions per client IP and
// route. It is a no-op when Redis is not configured, and only successful
// submissions count against the limit.
func SubmissionThrottle() gin.HandlerFunc {
	return func(c *gin.Context) {
		rdb := utils.GetRedis()
		if rdb == nil {
			c.Next()
			return
		}

		key := c.ClientIP() + ":" + c.FullPath()
		ok, msg := utils.CanSubmit(rdb, key)
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "result": nil, "error": msg})
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() < http.StatusBadRequest {
			utils.MarkSubmitted(rdb, key)
		}
	}
}
