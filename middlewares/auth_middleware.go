package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hjortab/hjort-api/utils"
)

// AuthMiddleware is the bearer-token gate in front of every protected
// route. A missing token answers 401, a present but unverifiable token
// answers 403, matching the public API contract. It keeps no state
// between requests.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := bearerToken(authHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authorized for this route - token missing!",
			})
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Not correct JWT!",
			})
			return
		}

		c.Set("adminID", claims.ID)
		c.Next()
	}
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
