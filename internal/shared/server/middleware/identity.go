package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// Identity reads the optional X-User-Id header and stores the numeric account
// ID on the request context. Resolution against the account store happens in
// the handlers that care; an absent or malformed header simply means an
// anonymous request.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Set(userIDKey, id)
			}
		}
		c.Next()
	}
}

// UserIDFromContext returns the numeric user ID stored by Identity, or zero.
func UserIDFromContext(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(int64); ok {
		return id
	}
	return 0
}
