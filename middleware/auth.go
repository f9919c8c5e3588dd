package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/utils"
)

// AdminAuthMiddleware gates every mutating admin operation behind the bearer
// token issued at login. All failure causes answer with the same 401.
func AdminAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.LogError("Invalid Bearer token format")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		username, err := utils.ValidateAdminToken(tokenString, jwtSecret)
		if err != nil {
			utils.LogError("Invalid admin token: %v", err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		c.Set("admin_user", username)
		c.Next()
	}
}
