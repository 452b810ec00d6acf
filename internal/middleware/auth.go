// Package middleware provides HTTP middleware for the application tracker API.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/services"
)

const (
	userIDKey = "user_id"
	emailKey  = "email"
)

var errNoIdentity = errors.New("request has no authenticated user")

// RequireAuth rejects requests without a valid bearer token and exposes the
// token's identity to downstream handlers.
func RequireAuth(jwtService services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Token Required"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid Token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) (int64, error) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return 0, errNoIdentity
	}
	userID, ok := id.(int64)
	if !ok {
		return 0, errNoIdentity
	}
	return userID, nil
}

// Email returns the authenticated user's email, or "" outside RequireAuth.
func Email(c *gin.Context) string {
	return c.GetString(emailKey)
}

func extractToken(c *gin.Context) string {
	parts := strings.SplitN(strings.TrimSpace(c.GetHeader("Authorization")), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
