package middleware

import (
	"net/http"
	"strings"

	"quadrafacil/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token and stores the caller's userID in
// the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token", "")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
