package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/The-boat-boat/sponsorreel/pkg/response"
)

// SessionResolver validates an opaque bearer token and returns the identity
// behind it
type SessionResolver func(ctx context.Context, token string) (userID, email, userType string, err error)

// SessionMiddleware authenticates requests with opaque session tokens.
// It sets the same context keys as JWTMiddleware so handlers are agnostic
// to which token scheme is in use.
func SessionMiddleware(resolve SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("MISSING_TOKEN", "Authorization header is required"))
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("INVALID_TOKEN", "Invalid authorization header format"))
			return
		}
		token := authHeader[len(bearerPrefix):]
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("INVALID_TOKEN", "Token is empty"))
			return
		}

		userID, email, userType, err := resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("INVALID_TOKEN", "Invalid or expired session"))
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyEmail, email)
		c.Set(ContextKeyUserType, userType)

		c.Next()
	}
}
