package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	ContextSubjectKey   = "subject"
)

func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || fields[0] != authorizationType {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		subject, err := tokenService.ValidateToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextSubjectKey, subject)

		c.Next()
	}
}

func subjectFrom(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
