package middleware

import (
	"github.com/gin-gonic/gin"
)

// LegacyAlias annotates responses served through a legacy route alias and points
// clients at the successor path.
func LegacyAlias(successor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Deprecation", "true")
		if successor != "" {
			c.Header("Link", "<"+successor+">; rel=\"successor-version\"")
		}
		c.Next()
	}
}
