package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"awards-cms-go/internal/auth"
)

// bearerToken extracts the value of an "Authorization: Bearer ..." header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// SessionAuthMiddleware verifies the session JWT issued at login and
// stores the username on the request context
func SessionAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		username, err := auth.VerifySessionToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("username", username)
		c.Next()
	}
}

// WriteTokenMiddleware gates document writes behind the static shared
// bearer token, compared in constant time
func WriteTokenMiddleware(writeToken string) gin.HandlerFunc {
	expected := sha256.Sum256([]byte(writeToken))
	return func(c *gin.Context) {
		got := sha256.Sum256([]byte(bearerToken(c)))
		if writeToken == "" || subtle.ConstantTimeCompare(got[:], expected[:]) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
