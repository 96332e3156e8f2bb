package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger emits one structured line per request after the handler chain
// has run. The caller's claims, if any, are attached so admin catalog
// writes can be traced back to an account.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.FullPath(),
			"status":    c.Writer.Status(),
			"duration":  time.Since(start),
			"client_ip": c.ClientIP(),
		}
		if claims, ok := CurrentClaims(c); ok {
			fields["user_id"] = claims.UserID
			fields["role"] = claims.Role
		}

		entry := logrus.WithFields(fields)
		if c.Writer.Status() >= 400 {
			entry.Error("request failed")
		} else {
			entry.Info("request handled")
		}
	}
}
