package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todoapi/internal/core/port"
)

const (
	// ContextUserID is the gin context key holding the verified caller id.
	ContextUserID = "x-user-id"

	// ContextUserEmail holds the email claim of the verified caller.
	ContextUserEmail = "x-user-email"
)

func TokenAuthMiddleware(tokens port.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			abortUnauthorized(c, "unauthorized request")
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		identity, err := tokens.Verify(strings.TrimPrefix(bearer, "Bearer "))

		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserEmail, identity.Email)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"errors": []string{message},
	})
}
