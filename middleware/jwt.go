package middleware

import (
	"jobboard-http-service/config"
	"jobboard-http-service/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken strips the "Bearer " prefix from an authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// RequireAuth validates the Bearer token and stores its claims in the
// request context
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
