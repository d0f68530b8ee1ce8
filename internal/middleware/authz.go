package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecomauth/internal/authz"
)

// RequireRoles passes requests whose role claim carries at least one of
// the allowed roles.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("roles")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no role in context"})
			return
		}
		roles, _ := v.(string)
		for _, want := range allowed {
			if authz.HasRole(roles, want) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
