package middlewares

import (
	"net/http"
	"strings"

	"github.com/bhavani-b03/Restaurant-app/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates write endpoints: 401 without a valid bearer token,
// otherwise sets "userID" in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware is AuthMiddleware for public read routes: a valid
// token sets "userID" so listings carry bookmark/visited flags, anything else
// proceeds anonymously instead of failing.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, err := utils.ParseJWT(tokenString); err == nil {
				c.Set("userID", userID)
			}
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id from the context, 0 for
// anonymous callers.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
