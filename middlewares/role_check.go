package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/utils"
)

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondMessage(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		roleStr, _ := role.(string)
		if !allowed[roleStr] {
			utils.RespondMessage(c, http.StatusForbidden, "Akses Ditolak. Area khusus Owner.")
			c.Abort()
			return
		}

		c.Next()
	}
}
